package model

import (
	"time"

	"github.com/forkd-labs/backend/internal/entity"
)

func ConvertUser(user *entity.User, skills []entity.Skill) User {
	names := []string{}
	for _, skill := range skills {
		names = append(names, skill.Name)
	}

	return User{
		ID:                user.ID,
		Email:             user.Email,
		FullName:          user.FullName,
		Bio:               user.Bio,
		AvatarURL:         user.AvatarURL,
		GithubUsername:    user.GithubUsername,
		IsGithubConnected: user.IsGithubConnected,
		IsVerified:        user.IsVerified,
		Skills:            names,
	}
}

func ConvertProject(project *entity.Project, ownerName string, tags []entity.Tag) Project {
	names := []string{}
	for _, tag := range tags {
		names = append(names, tag.Name)
	}

	return Project{
		ID:          project.ID,
		CreatedBy:   project.CreatedBy,
		OwnerName:   ownerName,
		Title:       project.Title,
		Description: project.Description,
		RepoURL:     project.RepoURL,
		Tags:        names,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func ConvertIssue(issue *entity.Issue) Issue {
	return Issue{
		ID:          issue.ID,
		ProjectID:   issue.ProjectID,
		Title:       issue.Title,
		Description: issue.Description,
		Status:      string(issue.Status),
		CreatedAt:   issue.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ConvertComment(comment *entity.Comment, user *entity.User) Comment {
	return Comment{
		ID:         comment.ID,
		ProjectID:  comment.ProjectID,
		UserID:     comment.UserID,
		UserName:   user.FullName,
		UserAvatar: user.AvatarURL,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ConvertProjectSummary(summary entity.ProjectSummary, tags []string, now time.Time) ProjectSummary {
	return ProjectSummary{
		ProjectID:       summary.ProjectID,
		Title:           summary.Title,
		Description:     summary.Description,
		RepoURL:         summary.RepoURL,
		CreatedBy:       summary.CreatedBy,
		OwnerName:       summary.OwnerName,
		CreatedAt:       summary.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       summary.UpdatedAt.Format(time.RFC3339Nano),
		Tags:            tags,
		LikesCount:      summary.LikesCount,
		CommentsCount:   summary.CommentsCount,
		OpenIssues:      summary.OpenIssues,
		ClosedIssues:    summary.ClosedIssues,
		EngagementScore: summary.EngagementScore(),
		DaysSinceUpdate: summary.DaysSinceUpdate(now),
		TrendingScore:   summary.TrendingScore(now),
	}
}

func ConvertContributorRank(rank entity.ContributorRank, position int64) ContributorRank {
	return ContributorRank{
		UserID:             rank.UserID,
		FullName:           rank.FullName,
		Email:              rank.Email,
		AvatarURL:          rank.AvatarURL,
		ProjectsCreated:    rank.ProjectsCreated,
		IssuesCollaborated: rank.IssuesCollaborated,
		CommentsMade:       rank.CommentsMade,
		ActivityScore:      rank.ActivityScore(),
		Rank:               position,
	}
}

func ConvertUserStats(activity entity.UserActivity) UserStats {
	return UserStats{
		UserID:               activity.UserID,
		FullName:             activity.FullName,
		Email:                activity.Email,
		AvatarURL:            activity.AvatarURL,
		ProjectsCreated:      activity.ProjectsCreated,
		IssuesCollaborated:   activity.IssuesCollaborated,
		ProjectsCollaborated: activity.ProjectsCollaborated,
		LikesGiven:           activity.LikesGiven,
		CommentsMade:         activity.CommentsMade,
		SkillCount:           activity.SkillCount,
		ActivityScore:        activity.ActivityScore(),
	}
}

func ConvertActivityEvent(event entity.ActivityEvent) ActivityEvent {
	return ActivityEvent{
		ActivityType: event.ActivityType,
		EntityID:     event.EntityID,
		EntityTitle:  event.EntityTitle,
		ActorID:      event.ActorID,
		ActorName:    event.ActorName,
		ActorAvatar:  event.ActorAvatar,
		ActivityDate: event.ActivityDate.Format(time.RFC3339Nano),
	}
}
