package repository

import (
	"context"
	"strings"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SummaryFilter struct {
	ProjectIDs []string

	// ExcludeOwner drops every project created by this user.
	ExcludeOwner string

	// NeedsHelp keeps only projects with at least one open issue.
	NeedsHelp bool
}

type SkillMatch struct {
	ProjectID string
	Matches   int64
}

type StatisticRepository interface {
	GetProjectSummaries(ctx context.Context, filter SummaryFilter) ([]entity.ProjectSummary, error)
	GetContributorRanks(ctx context.Context) ([]entity.ContributorRank, error)
	GetUserActivity(ctx context.Context, userID string) (*entity.UserActivity, error)
	GetRecentActivity(ctx context.Context, limit int) ([]entity.ActivityEvent, error)
	GetNetworkProjectIDs(ctx context.Context, userID string) ([]string, error)
	GetSkillMatches(ctx context.Context, skills []string, excludeOwner string) ([]SkillMatch, error)
}

type statisticRepository struct{}

func NewStatisticRepository() *statisticRepository {
	return &statisticRepository{}
}

// GetProjectSummaries groups the whole engagement projection in one scan.
// Every count is distinct to avoid fan-out from the multi-way left join.
func (r *statisticRepository) GetProjectSummaries(
	ctx context.Context, filter SummaryFilter,
) ([]entity.ProjectSummary, error) {
	tx := xcontext.DB(ctx).
		Table("projects").
		Select(`
			projects.id AS project_id,
			projects.title AS title,
			projects.description AS description,
			projects.repo_url AS repo_url,
			projects.created_by AS created_by,
			users.full_name AS owner_name,
			projects.created_at AS created_at,
			projects.updated_at AS updated_at,
			COUNT(DISTINCT likes.user_id) AS likes_count,
			COUNT(DISTINCT comments.id) AS comments_count,
			COUNT(DISTINCT CASE WHEN issues.status='open' THEN issues.id END) AS open_issues,
			COUNT(DISTINCT CASE WHEN issues.status='closed' THEN issues.id END) AS closed_issues`).
		Joins("JOIN users ON users.id=projects.created_by").
		Joins("LEFT JOIN likes ON likes.project_id=projects.id").
		Joins("LEFT JOIN comments ON comments.project_id=projects.id AND comments.deleted_at IS NULL").
		Joins("LEFT JOIN issues ON issues.project_id=projects.id AND issues.deleted_at IS NULL").
		Where("projects.deleted_at IS NULL").
		Group("projects.id, projects.title, projects.description, projects.repo_url, " +
			"projects.created_by, users.full_name, projects.created_at, projects.updated_at")

	if len(filter.ProjectIDs) > 0 {
		tx = tx.Where("projects.id IN (?)", filter.ProjectIDs)
	}

	if filter.ExcludeOwner != "" {
		tx = tx.Where("projects.created_by != ?", filter.ExcludeOwner)
	}

	if filter.NeedsHelp {
		tx = tx.Having("COUNT(DISTINCT CASE WHEN issues.status='open' THEN issues.id END) > 0")
	}

	var records []entity.ProjectSummary
	if err := tx.Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *statisticRepository) GetContributorRanks(ctx context.Context) ([]entity.ContributorRank, error) {
	var records []entity.ContributorRank
	err := xcontext.DB(ctx).
		Table("users").
		Select(`
			users.id AS user_id,
			users.full_name AS full_name,
			users.email AS email,
			users.avatar_url AS avatar_url,
			COUNT(DISTINCT projects.id) AS projects_created,
			COUNT(DISTINCT collaborators.issue_id) AS issues_collaborated,
			COUNT(DISTINCT comments.id) AS comments_made`).
		Joins("LEFT JOIN projects ON projects.created_by=users.id AND projects.deleted_at IS NULL").
		Joins("LEFT JOIN collaborators ON collaborators.user_id=users.id").
		Joins("LEFT JOIN comments ON comments.user_id=users.id AND comments.deleted_at IS NULL").
		Where("users.deleted_at IS NULL").
		Group("users.id, users.full_name, users.email, users.avatar_url").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetUserActivity returns gorm.ErrRecordNotFound for an unknown user id, a
// known user with no activity still yields an all-zero row.
func (r *statisticRepository) GetUserActivity(ctx context.Context, userID string) (*entity.UserActivity, error) {
	var record entity.UserActivity
	result := xcontext.DB(ctx).
		Table("users").
		Select(`
			users.id AS user_id,
			users.full_name AS full_name,
			users.email AS email,
			users.avatar_url AS avatar_url,
			COUNT(DISTINCT projects.id) AS projects_created,
			COUNT(DISTINCT collaborators.issue_id) AS issues_collaborated,
			COUNT(DISTINCT issues.project_id) AS projects_collaborated,
			COUNT(DISTINCT likes.project_id) AS likes_given,
			COUNT(DISTINCT comments.id) AS comments_made,
			COUNT(DISTINCT skills.name) AS skill_count`).
		Joins("LEFT JOIN projects ON projects.created_by=users.id AND projects.deleted_at IS NULL").
		Joins("LEFT JOIN collaborators ON collaborators.user_id=users.id").
		Joins("LEFT JOIN issues ON issues.id=collaborators.issue_id AND issues.deleted_at IS NULL").
		Joins("LEFT JOIN likes ON likes.user_id=users.id").
		Joins("LEFT JOIN comments ON comments.user_id=users.id AND comments.deleted_at IS NULL").
		Joins("LEFT JOIN skills ON skills.user_id=users.id").
		Where("users.id=? AND users.deleted_at IS NULL", userID).
		Group("users.id, users.full_name, users.email, users.avatar_url").
		Scan(&record)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &record, nil
}

// GetRecentActivity merges project creations and comment posts into one feed.
// Likes carry no timestamp so they never appear here.
func (r *statisticRepository) GetRecentActivity(ctx context.Context, limit int) ([]entity.ActivityEvent, error) {
	var records []entity.ActivityEvent
	err := xcontext.DB(ctx).Raw(`
		SELECT * FROM (
			SELECT
				'project_created' AS activity_type,
				projects.id AS entity_id,
				projects.title AS entity_title,
				users.id AS actor_id,
				users.full_name AS actor_name,
				users.avatar_url AS actor_avatar,
				projects.created_at AS activity_date
			FROM projects
			JOIN users ON users.id=projects.created_by
			WHERE projects.deleted_at IS NULL AND users.deleted_at IS NULL
			UNION ALL
			SELECT
				'comment_posted' AS activity_type,
				comments.id AS entity_id,
				projects.title AS entity_title,
				users.id AS actor_id,
				users.full_name AS actor_name,
				users.avatar_url AS actor_avatar,
				comments.created_at AS activity_date
			FROM comments
			JOIN users ON users.id=comments.user_id
			JOIN projects ON projects.id=comments.project_id
			WHERE comments.deleted_at IS NULL
				AND projects.deleted_at IS NULL
				AND users.deleted_at IS NULL
		) AS activities
		ORDER BY activity_date DESC
		LIMIT ?`, limit).Scan(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetNetworkProjectIDs expands one hop through shared issue-collaborations
// and shared likes, then collects the neighbours' projects. The requester's
// own projects are excluded here, not downstream.
func (r *statisticRepository) GetNetworkProjectIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := xcontext.DB(ctx).Raw(`
		SELECT DISTINCT projects.id
		FROM projects
		WHERE projects.deleted_at IS NULL
			AND projects.created_by != ?
			AND projects.created_by IN (
				SELECT c2.user_id
				FROM collaborators c1
				JOIN collaborators c2 ON c2.issue_id=c1.issue_id AND c2.user_id != c1.user_id
				WHERE c1.user_id = ?
				UNION
				SELECT l2.user_id
				FROM likes l1
				JOIN likes l2 ON l2.project_id=l1.project_id AND l2.user_id != l1.user_id
				WHERE l1.user_id = ?
			)`, userID, userID, userID).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// GetSkillMatches counts per project how many of its tags fall in the given
// case-folded skill set. Projects without a matching tag are absent.
func (r *statisticRepository) GetSkillMatches(
	ctx context.Context, skills []string, excludeOwner string,
) ([]SkillMatch, error) {
	if len(skills) == 0 {
		return nil, nil
	}

	folded := make([]string, 0, len(skills))
	for _, skill := range skills {
		folded = append(folded, strings.ToLower(skill))
	}

	var records []SkillMatch
	err := xcontext.DB(ctx).
		Table("tags").
		Select("tags.project_id AS project_id, COUNT(DISTINCT LOWER(tags.name)) AS matches").
		Joins("JOIN projects ON projects.id=tags.project_id").
		Where("LOWER(tags.name) IN (?)", folded).
		Where("projects.deleted_at IS NULL").
		Where("projects.created_by != ?", excludeOwner).
		Group("tags.project_id").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
