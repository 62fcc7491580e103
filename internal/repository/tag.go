package repository

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	CreateMany(ctx context.Context, tags []entity.Tag) error
	GetByProjectID(ctx context.Context, projectID string) ([]entity.Tag, error)
	GetByProjectIDs(ctx context.Context, projectIDs []string) ([]entity.Tag, error)
	DeleteByProjectID(ctx context.Context, projectID string) error
}

type tagRepository struct{}

func NewTagRepository() *tagRepository {
	return &tagRepository{}
}

func (r *tagRepository) CreateMany(ctx context.Context, tags []entity.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tags).Error
}

func (r *tagRepository) GetByProjectID(ctx context.Context, projectID string) ([]entity.Tag, error) {
	var records []entity.Tag
	err := xcontext.DB(ctx).
		Order("name ASC").
		Find(&records, "project_id=?", projectID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *tagRepository) GetByProjectIDs(ctx context.Context, projectIDs []string) ([]entity.Tag, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	var records []entity.Tag
	err := xcontext.DB(ctx).
		Order("name ASC").
		Find(&records, "project_id IN (?)", projectIDs).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *tagRepository) DeleteByProjectID(ctx context.Context, projectID string) error {
	return xcontext.DB(ctx).
		Where("project_id=?", projectID).
		Delete(&entity.Tag{}).Error
}
