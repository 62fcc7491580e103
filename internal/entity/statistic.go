package entity

import "time"

// ProjectSummary is the grouped engagement projection of one project. It is
// recomputed on every query, never stored.
type ProjectSummary struct {
	ProjectID     string
	Title         string
	Description   string
	RepoURL       string
	CreatedBy     string
	OwnerName     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LikesCount    int64
	CommentsCount int64
	OpenIssues    int64
	ClosedIssues  int64
}

func (s ProjectSummary) EngagementScore() int64 {
	return s.LikesCount + s.CommentsCount
}

// DaysSinceUpdate is floored at 1.0 so trending scores never divide by a
// near-zero age.
func (s ProjectSummary) DaysSinceUpdate(now time.Time) float64 {
	days := now.Sub(s.UpdatedAt).Hours() / 24
	if days < 1.0 {
		return 1.0
	}

	return days
}

func (s ProjectSummary) TrendingScore(now time.Time) float64 {
	return float64(s.EngagementScore()) / s.DaysSinceUpdate(now)
}

// ContributorRank is the per-user weighted activity projection. The rank
// itself is assigned after sorting by ActivityScore.
type ContributorRank struct {
	UserID             string
	FullName           string
	Email              string
	AvatarURL          string
	ProjectsCreated    int64
	IssuesCollaborated int64
	CommentsMade       int64
}

func (c ContributorRank) ActivityScore() int64 {
	return activityScore(c.ProjectsCreated, c.IssuesCollaborated, c.CommentsMade)
}

// UserActivity is the full activity projection of a single user.
type UserActivity struct {
	UserID               string
	FullName             string
	Email                string
	AvatarURL            string
	ProjectsCreated      int64
	IssuesCollaborated   int64
	ProjectsCollaborated int64
	LikesGiven           int64
	CommentsMade         int64
	SkillCount           int64
}

func (a UserActivity) ActivityScore() int64 {
	return activityScore(a.ProjectsCreated, a.IssuesCollaborated, a.CommentsMade)
}

// activityScore keeps the ranking weights in exactly one place.
func activityScore(projects, issues, comments int64) int64 {
	return 3*projects + 2*issues + comments
}

const (
	ActivityProjectCreated = "project_created"
	ActivityCommentPosted  = "comment_posted"
)

// ActivityEvent is one row of the merged recent-activity feed. Likes never
// appear here, they carry no timestamp.
type ActivityEvent struct {
	ActivityType string
	EntityID     string
	EntityTitle  string
	ActorID      string
	ActorName    string
	ActorAvatar  string
	ActivityDate time.Time
}
