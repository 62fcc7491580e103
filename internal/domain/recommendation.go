package domain

import (
	"context"
	"time"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/enum"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type RecommendMode string

var (
	RecommendDefault    = enum.New(RecommendMode("default"))
	RecommendSpotlight  = enum.New(RecommendMode("spotlight"))
	RecommendWithIssues = enum.New(RecommendMode("with-issues"))
	RecommendSkillMatch = enum.New(RecommendMode("skill-match"))
	RecommendNetwork    = enum.New(RecommendMode("network"))
)

// recommendationLimit caps every recommendation mode.
const recommendationLimit = 20

const emptySkillsMessage = "Add skills to your profile to get personalized recommendations"

type RecommendationDomain interface {
	Get(ctx context.Context, req *model.GetRecommendationRequest) (*model.GetRecommendationResponse, error)
}

type recommendationDomain struct {
	statisticRepo repository.StatisticRepository
	skillRepo     repository.SkillRepository
	tagRepo       repository.TagRepository
}

func NewRecommendationDomain(
	statisticRepo repository.StatisticRepository,
	skillRepo repository.SkillRepository,
	tagRepo repository.TagRepository,
) *recommendationDomain {
	return &recommendationDomain{
		statisticRepo: statisticRepo,
		skillRepo:     skillRepo,
		tagRepo:       tagRepo,
	}
}

// Get dispatches on the mode selector. An unknown mode falls back to the
// default mode instead of failing. Every mode excludes the requester's own
// projects and caps the result at 20 rows.
func (d *recommendationDomain) Get(
	ctx context.Context, req *model.GetRecommendationRequest,
) (*model.GetRecommendationResponse, error) {
	mode := RecommendDefault
	if req.Mode != "" {
		if m, err := enum.ToEnum[RecommendMode](req.Mode); err == nil {
			mode = m
		}
	}

	userID := xcontext.RequestUserID(ctx)
	now := time.Now()

	var projects []model.ProjectSummary
	var message string
	var err error

	switch mode {
	case RecommendSpotlight:
		projects, err = d.trending(ctx, userID, now)
	case RecommendWithIssues:
		projects, err = d.needsHelp(ctx, userID, now)
	case RecommendSkillMatch:
		projects, message, err = d.skillMatch(ctx, userID, now)
	case RecommendNetwork:
		projects, err = d.network(ctx, userID, now)
	default:
		projects, err = d.recent(ctx, userID, now)
	}

	if err != nil {
		return nil, err
	}

	if err := d.attachTags(ctx, projects); err != nil {
		return nil, err
	}

	return &model.GetRecommendationResponse{
		Mode:     string(mode),
		Projects: projects,
		Message:  message,
	}, nil
}

func (d *recommendationDomain) trending(
	ctx context.Context, userID string, now time.Time,
) ([]model.ProjectSummary, error) {
	summaries, err := d.summaries(ctx, repository.SummaryFilter{ExcludeOwner: userID})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(summaries, func(a, b entity.ProjectSummary) bool {
		return a.TrendingScore(now) > b.TrendingScore(now)
	})

	return convertSummaries(truncate(summaries), now), nil
}

func (d *recommendationDomain) needsHelp(
	ctx context.Context, userID string, now time.Time,
) ([]model.ProjectSummary, error) {
	summaries, err := d.summaries(ctx, repository.SummaryFilter{
		ExcludeOwner: userID,
		NeedsHelp:    true,
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(summaries, func(a, b entity.ProjectSummary) bool {
		if a.OpenIssues != b.OpenIssues {
			return a.OpenIssues > b.OpenIssues
		}

		return a.TrendingScore(now) > b.TrendingScore(now)
	})

	return convertSummaries(truncate(summaries), now), nil
}

func (d *recommendationDomain) recent(
	ctx context.Context, userID string, now time.Time,
) ([]model.ProjectSummary, error) {
	summaries, err := d.summaries(ctx, repository.SummaryFilter{ExcludeOwner: userID})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(summaries, func(a, b entity.ProjectSummary) bool {
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	return convertSummaries(truncate(summaries), now), nil
}

func (d *recommendationDomain) network(
	ctx context.Context, userID string, now time.Time,
) ([]model.ProjectSummary, error) {
	ids, err := d.statisticRepo.GetNetworkProjectIDs(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get network projects: %v", err)
		return nil, errorx.Unknown
	}

	if len(ids) == 0 {
		return []model.ProjectSummary{}, nil
	}

	summaries, err := d.summaries(ctx, repository.SummaryFilter{
		ProjectIDs:   ids,
		ExcludeOwner: userID,
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(summaries, func(a, b entity.ProjectSummary) bool {
		return a.TrendingScore(now) > b.TrendingScore(now)
	})

	return convertSummaries(truncate(summaries), now), nil
}

func (d *recommendationDomain) skillMatch(
	ctx context.Context, userID string, now time.Time,
) ([]model.ProjectSummary, string, error) {
	skills, err := d.skillRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user skills: %v", err)
		return nil, "", errorx.Unknown
	}

	if len(skills) == 0 {
		return []model.ProjectSummary{}, emptySkillsMessage, nil
	}

	names := []string{}
	for _, skill := range skills {
		names = append(names, skill.Name)
	}

	matches, err := d.statisticRepo.GetSkillMatches(ctx, names, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get skill matches: %v", err)
		return nil, "", errorx.Unknown
	}

	if len(matches) == 0 {
		return []model.ProjectSummary{}, "", nil
	}

	matchesByProject := map[string]int64{}
	ids := []string{}
	for _, match := range matches {
		matchesByProject[match.ProjectID] = match.Matches
		ids = append(ids, match.ProjectID)
	}

	summaries, err := d.summaries(ctx, repository.SummaryFilter{
		ProjectIDs:   ids,
		ExcludeOwner: userID,
	})
	if err != nil {
		return nil, "", err
	}

	slices.SortStableFunc(summaries, func(a, b entity.ProjectSummary) bool {
		if matchesByProject[a.ProjectID] != matchesByProject[b.ProjectID] {
			return matchesByProject[a.ProjectID] > matchesByProject[b.ProjectID]
		}

		return a.EngagementScore() > b.EngagementScore()
	})

	projects := convertSummaries(truncate(summaries), now)
	for i := range projects {
		projects[i].SkillMatches = matchesByProject[projects[i].ProjectID]
	}

	return projects, "", nil
}

func (d *recommendationDomain) summaries(
	ctx context.Context, filter repository.SummaryFilter,
) ([]entity.ProjectSummary, error) {
	summaries, err := d.statisticRepo.GetProjectSummaries(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project summaries: %v", err)
		return nil, errorx.Unknown
	}

	return summaries, nil
}

// attachTags batch-fetches the tags of the final result set in one query.
func (d *recommendationDomain) attachTags(ctx context.Context, projects []model.ProjectSummary) error {
	ids := []string{}
	for _, project := range projects {
		ids = append(ids, project.ProjectID)
	}

	tags, err := d.tagRepo.GetByProjectIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project tags: %v", err)
		return errorx.Unknown
	}

	tagsByProject := map[string][]string{}
	for _, tag := range tags {
		tagsByProject[tag.ProjectID] = append(tagsByProject[tag.ProjectID], tag.Name)
	}

	for i := range projects {
		names, ok := tagsByProject[projects[i].ProjectID]
		if !ok {
			names = []string{}
		}

		projects[i].Tags = names
	}

	return nil
}

func truncate(summaries []entity.ProjectSummary) []entity.ProjectSummary {
	if len(summaries) > recommendationLimit {
		return summaries[:recommendationLimit]
	}

	return summaries
}

func convertSummaries(summaries []entity.ProjectSummary, now time.Time) []model.ProjectSummary {
	projects := []model.ProjectSummary{}
	for _, summary := range summaries {
		projects = append(projects, model.ConvertProjectSummary(summary, nil, now))
	}

	return projects
}
