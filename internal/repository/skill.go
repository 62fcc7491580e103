package repository

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type SkillRepository interface {
	CreateMany(ctx context.Context, skills []entity.Skill) error
	GetByUserID(ctx context.Context, userID string) ([]entity.Skill, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type skillRepository struct{}

func NewSkillRepository() *skillRepository {
	return &skillRepository{}
}

func (r *skillRepository) CreateMany(ctx context.Context, skills []entity.Skill) error {
	if len(skills) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(skills).Error
}

func (r *skillRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Skill, error) {
	var records []entity.Skill
	err := xcontext.DB(ctx).
		Order("name ASC").
		Find(&records, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *skillRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).
		Where("user_id=?", userID).
		Delete(&entity.Skill{}).Error
}
