package repository

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type CollaboratorRepository interface {
	Upsert(ctx context.Context, collaborator *entity.Collaborator) error
	GetByIssueID(ctx context.Context, issueID string) ([]entity.Collaborator, error)
	DeleteByProjectID(ctx context.Context, projectID string) error
}

type collaboratorRepository struct{}

func NewCollaboratorRepository() *collaboratorRepository {
	return &collaboratorRepository{}
}

// Upsert is idempotent, crediting the same user twice on one issue keeps a
// single row.
func (r *collaboratorRepository) Upsert(ctx context.Context, collaborator *entity.Collaborator) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(collaborator).Error
}

func (r *collaboratorRepository) GetByIssueID(ctx context.Context, issueID string) ([]entity.Collaborator, error) {
	var records []entity.Collaborator
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&records, "issue_id=?", issueID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *collaboratorRepository) DeleteByProjectID(ctx context.Context, projectID string) error {
	return xcontext.DB(ctx).
		Where("issue_id IN (SELECT id FROM issues WHERE project_id=?)", projectID).
		Delete(&entity.Collaborator{}).Error
}
