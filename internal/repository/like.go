package repository

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
)

type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	Get(ctx context.Context, userID, projectID string) (*entity.Like, error)
	Delete(ctx context.Context, userID, projectID string) error
	CountByProjectID(ctx context.Context, projectID string) (int64, error)
	DeleteByProjectID(ctx context.Context, projectID string) error
}

type likeRepository struct{}

func NewLikeRepository() *likeRepository {
	return &likeRepository{}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	return xcontext.DB(ctx).Create(like).Error
}

func (r *likeRepository) Get(ctx context.Context, userID, projectID string) (*entity.Like, error) {
	var record entity.Like
	err := xcontext.DB(ctx).
		Take(&record, "user_id=? AND project_id=?", userID, projectID).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, projectID string) error {
	return xcontext.DB(ctx).
		Where("user_id=? AND project_id=?", userID, projectID).
		Delete(&entity.Like{}).Error
}

func (r *likeRepository) CountByProjectID(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Like{}).
		Where("project_id=?", projectID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *likeRepository) DeleteByProjectID(ctx context.Context, projectID string) error {
	return xcontext.DB(ctx).
		Where("project_id=?", projectID).
		Delete(&entity.Like{}).Error
}
