package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentDomain interface {
	Create(ctx context.Context, req *model.CreateCommentRequest) (*model.CreateCommentResponse, error)
	Delete(ctx context.Context, req *model.DeleteCommentRequest) (*model.DeleteCommentResponse, error)
	GetByProject(ctx context.Context, req *model.GetProjectCommentsRequest) (*model.GetProjectCommentsResponse, error)
}

type commentDomain struct {
	commentRepo repository.CommentRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

func NewCommentDomain(
	commentRepo repository.CommentRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
) *commentDomain {
	return &commentDomain{
		commentRepo: commentRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func (d *commentDomain) Create(
	ctx context.Context, req *model.CreateCommentRequest,
) (*model.CreateCommentResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty comment")
	}

	if _, err := d.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment author: %v", err)
		return nil, errorx.Unknown
	}

	comment := &entity.Comment{
		Base:      entity.Base{ID: uuid.NewString()},
		ProjectID: req.ProjectID,
		UserID:    userID,
		Content:   req.Content,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCommentResponse{Comment: model.ConvertComment(comment, user)}, nil
}

// Delete allows the comment author or the owner of the commented project.
func (d *commentDomain) Delete(
	ctx context.Context, req *model.DeleteCommentRequest,
) (*model.DeleteCommentResponse, error) {
	comment, err := d.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if comment.UserID != userID {
		project, err := d.projectRepo.GetByID(ctx, comment.ProjectID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get project of comment: %v", err)
			return nil, errorx.Unknown
		}

		if project.CreatedBy != userID {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}
	}

	if err := d.commentRepo.DeleteByID(ctx, comment.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCommentResponse{}, nil
}

func (d *commentDomain) GetByProject(
	ctx context.Context, req *model.GetProjectCommentsRequest,
) (*model.GetProjectCommentsResponse, error) {
	comments, err := d.commentRepo.GetByProjectID(ctx, req.ProjectID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project comments: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{}
	for _, comment := range comments {
		userIDs = append(userIDs, comment.UserID)
	}

	authors := map[string]*entity.User{}
	if len(userIDs) > 0 {
		users, err := d.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get comment authors: %v", err)
			return nil, errorx.Unknown
		}

		for i := range users {
			authors[users[i].ID] = &users[i]
		}
	}

	resp := &model.GetProjectCommentsResponse{Comments: []model.Comment{}}
	for i := range comments {
		author, ok := authors[comments[i].UserID]
		if !ok {
			continue
		}

		resp.Comments = append(resp.Comments, model.ConvertComment(&comments[i], author))
	}

	return resp, nil
}
