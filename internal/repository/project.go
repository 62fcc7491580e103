package repository

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Project, error)
	UpdateByID(ctx context.Context, id string, data *entity.Project) error
	DeleteByID(ctx context.Context, id string) error
}

type projectRepository struct{}

func NewProjectRepository() *projectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return xcontext.DB(ctx).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	var record entity.Project
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *projectRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Project, error) {
	var records []entity.Project
	err := xcontext.DB(ctx).
		Order("created_at DESC").
		Find(&records, "created_by=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *projectRepository) UpdateByID(ctx context.Context, id string, data *entity.Project) error {
	return xcontext.DB(ctx).
		Model(&entity.Project{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *projectRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Project{}, "id=?", id).Error
}
