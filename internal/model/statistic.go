package model

type ProjectSummary struct {
	ProjectID       string   `json:"project_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	RepoURL         string   `json:"repo_url"`
	CreatedBy       string   `json:"created_by"`
	OwnerName       string   `json:"owner_name"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	Tags            []string `json:"tags"`
	LikesCount      int64    `json:"likes_count"`
	CommentsCount   int64    `json:"comments_count"`
	OpenIssues      int64    `json:"open_issues"`
	ClosedIssues    int64    `json:"closed_issues"`
	EngagementScore int64    `json:"engagement_score"`
	DaysSinceUpdate float64  `json:"days_since_update"`
	TrendingScore   float64  `json:"trending_score"`
	SkillMatches    int64    `json:"skill_matches,omitempty"`
}

type GetRecommendationRequest struct {
	Mode string `json:"mode"`
}

type GetRecommendationResponse struct {
	Mode     string           `json:"mode"`
	Projects []ProjectSummary `json:"projects"`
	Message  string           `json:"message,omitempty"`
}

type ContributorRank struct {
	UserID             string `json:"user_id"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	AvatarURL          string `json:"avatar_url"`
	ProjectsCreated    int64  `json:"projects_created"`
	IssuesCollaborated int64  `json:"issues_collaborated"`
	CommentsMade       int64  `json:"comments_made"`
	ActivityScore      int64  `json:"activity_score"`
	Rank               int64  `json:"rank"`
}

type GetTopContributorsRequest struct {
	Limit int `json:"limit"`
}

type GetTopContributorsResponse struct {
	Contributors []ContributorRank `json:"contributors"`
}

type UserStats struct {
	UserID               string `json:"user_id"`
	FullName             string `json:"full_name"`
	Email                string `json:"email"`
	AvatarURL            string `json:"avatar_url"`
	ProjectsCreated      int64  `json:"projects_created"`
	IssuesCollaborated   int64  `json:"issues_collaborated"`
	ProjectsCollaborated int64  `json:"projects_collaborated"`
	LikesGiven           int64  `json:"likes_given"`
	CommentsMade         int64  `json:"comments_made"`
	SkillCount           int64  `json:"skill_count"`
	ActivityScore        int64  `json:"activity_score"`
}

type GetUserStatsRequest struct {
	UserID string `json:"user_id"`
}

type GetUserStatsResponse struct {
	Stats UserStats `json:"stats"`
}

type ActivityEvent struct {
	ActivityType string `json:"activity_type"`
	EntityID     string `json:"entity_id"`
	EntityTitle  string `json:"entity_title"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
	ActorAvatar  string `json:"actor_avatar"`
	ActivityDate string `json:"activity_date"`
}

type GetRecentActivityRequest struct {
	Limit int `json:"limit"`
}

type GetRecentActivityResponse struct {
	Activities []ActivityEvent `json:"activities"`
}
