package repository

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
)

type VerificationTokenRepository interface {
	Create(ctx context.Context, token *entity.VerificationToken) error
	GetByToken(ctx context.Context, token string) (*entity.VerificationToken, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type verificationTokenRepository struct{}

func NewVerificationTokenRepository() *verificationTokenRepository {
	return &verificationTokenRepository{}
}

func (r *verificationTokenRepository) Create(ctx context.Context, token *entity.VerificationToken) error {
	return xcontext.DB(ctx).Create(token).Error
}

func (r *verificationTokenRepository) GetByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	var record entity.VerificationToken
	if err := xcontext.DB(ctx).Take(&record, "token=?", token).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *verificationTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).
		Where("user_id=?", userID).
		Delete(&entity.VerificationToken{}).Error
}
