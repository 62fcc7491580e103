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
	mathUtil "github.com/pkg/math"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	GetList(ctx context.Context, req *model.GetListUserRequest) (*model.GetListUserResponse, error)
	Update(ctx context.Context, req *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
}

type userDomain struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	skillRepo repository.SkillRepository,
) *userDomain {
	return &userDomain{
		userRepo:  userRepo,
		skillRepo: skillRepo,
	}
}

func (d *userDomain) GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error) {
	user, skills, err := d.load(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	return &model.GetMeResponse{User: model.ConvertUser(user, skills)}, nil
}

func (d *userDomain) GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	user, skills, err := d.load(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return &model.GetUserResponse{User: model.ConvertUser(user, skills)}, nil
}

func (d *userDomain) GetList(
	ctx context.Context, req *model.GetListUserRequest,
) (*model.GetListUserResponse, error) {
	if req.Limit < 0 || req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit and offset must not be negative")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}
	req.Limit = mathUtil.MinInt(req.Limit, apiCfg.MaxLimit)

	users, err := d.userRepo.GetList(ctx, req.Q, xcontext.RequestUserID(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user list: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListUserResponse{Users: []model.User{}}
	for i := range users {
		resp.Users = append(resp.Users, model.ConvertUser(&users[i], nil))
	}

	return resp, nil
}

func (d *userDomain) Update(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err := d.userRepo.UpdateByID(ctx, userID, &entity.User{
		FullName:       req.FullName,
		Bio:            req.Bio,
		AvatarURL:      req.AvatarURL,
		GithubUsername: req.GithubUsername,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	if req.Skills != nil {
		if err := d.skillRepo.DeleteByUserID(ctx, userID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete user skills: %v", err)
			return nil, errorx.Unknown
		}

		if err := d.skillRepo.CreateMany(ctx, dedupSkills(userID, req.Skills)); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create user skills: %v", err)
			return nil, errorx.Unknown
		}
	}

	user, skills, err := d.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.UpdateUserResponse{User: model.ConvertUser(user, skills)}, nil
}

func (d *userDomain) load(ctx context.Context, userID string) (*entity.User, []entity.Skill, error) {
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, nil, errorx.Unknown
	}

	skills, err := d.skillRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user skills: %v", err)
		return nil, nil, errorx.Unknown
	}

	return user, skills, nil
}

// dedupSkills drops case-insensitive duplicates, keeping the first spelling.
func dedupSkills(userID string, names []string) []entity.Skill {
	seen := map[string]bool{}
	skills := []entity.Skill{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}

		seen[strings.ToLower(name)] = true
		skills = append(skills, entity.Skill{UserID: userID, Name: name})
	}

	return skills
}
