package repository

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
)

type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) error
	GetByID(ctx context.Context, id string) (*entity.Issue, error)
	GetByProjectID(ctx context.Context, projectID string) ([]entity.Issue, error)
	UpdateStatusByID(ctx context.Context, id string, status entity.IssueStatus) error
	DeleteByProjectID(ctx context.Context, projectID string) error
}

type issueRepository struct{}

func NewIssueRepository() *issueRepository {
	return &issueRepository{}
}

func (r *issueRepository) Create(ctx context.Context, issue *entity.Issue) error {
	return xcontext.DB(ctx).Create(issue).Error
}

func (r *issueRepository) GetByID(ctx context.Context, id string) (*entity.Issue, error) {
	var record entity.Issue
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *issueRepository) GetByProjectID(ctx context.Context, projectID string) ([]entity.Issue, error) {
	var records []entity.Issue
	err := xcontext.DB(ctx).
		Order("created_at DESC").
		Find(&records, "project_id=?", projectID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *issueRepository) UpdateStatusByID(ctx context.Context, id string, status entity.IssueStatus) error {
	return xcontext.DB(ctx).
		Model(&entity.Issue{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *issueRepository) DeleteByProjectID(ctx context.Context, projectID string) error {
	return xcontext.DB(ctx).
		Where("project_id=?", projectID).
		Delete(&entity.Issue{}).Error
}
