package repository

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	GetByProjectID(ctx context.Context, projectID string) ([]entity.Comment, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByProjectID(ctx context.Context, projectID string) error
}

type commentRepository struct{}

func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return xcontext.DB(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var record entity.Comment
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *commentRepository) GetByProjectID(ctx context.Context, projectID string) ([]entity.Comment, error) {
	var records []entity.Comment
	err := xcontext.DB(ctx).
		Order("created_at DESC").
		Find(&records, "project_id=?", projectID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *commentRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Comment{}, "id=?", id).Error
}

func (r *commentRepository) DeleteByProjectID(ctx context.Context, projectID string) error {
	return xcontext.DB(ctx).
		Where("project_id=?", projectID).
		Delete(&entity.Comment{}).Error
}
