package domain

import (
	"context"
	"errors"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
	mathUtil "github.com/pkg/math"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	defaultContributorLimit = 10
	maxContributorLimit     = 50
	defaultActivityLimit    = 20
	maxActivityLimit        = 100
)

type StatisticDomain interface {
	GetTopContributors(ctx context.Context, req *model.GetTopContributorsRequest) (*model.GetTopContributorsResponse, error)
	GetUserStats(ctx context.Context, req *model.GetUserStatsRequest) (*model.GetUserStatsResponse, error)
	GetRecentActivity(ctx context.Context, req *model.GetRecentActivityRequest) (*model.GetRecentActivityResponse, error)
}

type statisticDomain struct {
	statisticRepo repository.StatisticRepository
}

func NewStatisticDomain(statisticRepo repository.StatisticRepository) *statisticDomain {
	return &statisticDomain{statisticRepo: statisticRepo}
}

// GetTopContributors ranks all users by activity score with competition
// ranking, ties share a rank and a gap follows the tie group. The order
// among exact ties is unspecified.
func (d *statisticDomain) GetTopContributors(
	ctx context.Context, req *model.GetTopContributorsRequest,
) (*model.GetTopContributorsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultContributorLimit
	}
	limit = mathUtil.MinInt(limit, maxContributorLimit)

	rows, err := d.statisticRepo.GetContributorRanks(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get contributor ranks: %v", err)
		return nil, errorx.Unknown
	}

	slices.SortStableFunc(rows, func(a, b entity.ContributorRank) bool {
		return a.ActivityScore() > b.ActivityScore()
	})

	resp := &model.GetTopContributorsResponse{Contributors: []model.ContributorRank{}}
	rank := int64(0)
	prevScore := int64(-1)
	for i, row := range rows {
		if i >= limit {
			break
		}

		if score := row.ActivityScore(); i == 0 || score != prevScore {
			rank = int64(i + 1)
			prevScore = score
		}

		resp.Contributors = append(resp.Contributors, model.ConvertContributorRank(row, rank))
	}

	return resp, nil
}

func (d *statisticDomain) GetUserStats(
	ctx context.Context, req *model.GetUserStatsRequest,
) (*model.GetUserStatsResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	activity, err := d.statisticRepo.GetUserActivity(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user activity: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserStatsResponse{Stats: model.ConvertUserStats(*activity)}, nil
}

func (d *statisticDomain) GetRecentActivity(
	ctx context.Context, req *model.GetRecentActivityRequest,
) (*model.GetRecentActivityResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	limit = mathUtil.MinInt(limit, maxActivityLimit)

	events, err := d.statisticRepo.GetRecentActivity(ctx, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get recent activity: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetRecentActivityResponse{Activities: []model.ActivityEvent{}}
	for _, event := range events {
		resp.Activities = append(resp.Activities, model.ConvertActivityEvent(event))
	}

	return resp, nil
}
