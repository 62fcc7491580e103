package domain

import (
	"context"
	"errors"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type LikeDomain interface {
	Toggle(ctx context.Context, req *model.ToggleLikeRequest) (*model.ToggleLikeResponse, error)
}

type likeDomain struct {
	likeRepo    repository.LikeRepository
	projectRepo repository.ProjectRepository
}

func NewLikeDomain(
	likeRepo repository.LikeRepository,
	projectRepo repository.ProjectRepository,
) *likeDomain {
	return &likeDomain{
		likeRepo:    likeRepo,
		projectRepo: projectRepo,
	}
}

func (d *likeDomain) Toggle(ctx context.Context, req *model.ToggleLikeRequest) (*model.ToggleLikeResponse, error) {
	if _, err := d.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	liked := false

	_, err := d.likeRepo.Get(ctx, userID, req.ProjectID)
	switch {
	case err == nil:
		if err := d.likeRepo.Delete(ctx, userID, req.ProjectID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete like: %v", err)
			return nil, errorx.Unknown
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		like := &entity.Like{UserID: userID, ProjectID: req.ProjectID}
		if err := d.likeRepo.Create(ctx, like); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create like: %v", err)
			return nil, errorx.Unknown
		}
		liked = true

	default:
		xcontext.Logger(ctx).Errorf("Cannot get like: %v", err)
		return nil, errorx.Unknown
	}

	count, err := d.likeRepo.CountByProjectID(ctx, req.ProjectID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ToggleLikeResponse{Liked: liked, LikesCount: count}, nil
}
