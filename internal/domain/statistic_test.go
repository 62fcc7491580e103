package domain_test

import (
	"testing"

	"github.com/forkd-labs/backend/internal/domain"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_GetTopContributors(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticDomain := domain.NewStatisticDomain(repository.NewStatisticRepository())

	resp, err := statisticDomain.GetTopContributors(ctx, &model.GetTopContributorsRequest{Limit: 999})
	require.NoError(t, err)
	require.Len(t, resp.Contributors, 6)

	byID := map[string]model.ContributorRank{}
	for _, contributor := range resp.Contributors {
		byID[contributor.UserID] = contributor
	}

	// Scores: alice 13, frank 5, bob 4, eve 4, carol 3, dave 0. Bob and eve
	// tie, sharing a rank with a gap after the tie group.
	require.Equal(t, int64(1), byID[testutil.User1.ID].Rank)
	require.Equal(t, int64(2), byID[testutil.User6.ID].Rank)
	require.Equal(t, int64(3), byID[testutil.User2.ID].Rank)
	require.Equal(t, int64(3), byID[testutil.User5.ID].Rank)
	require.Equal(t, int64(5), byID[testutil.User3.ID].Rank)
	require.Equal(t, int64(6), byID[testutil.User4.ID].Rank)

	// Rank is monotonic non-increasing as the score decreases.
	for i := 1; i < len(resp.Contributors); i++ {
		prev, cur := resp.Contributors[i-1], resp.Contributors[i]
		require.GreaterOrEqual(t, prev.ActivityScore, cur.ActivityScore)
		require.LessOrEqual(t, prev.Rank, cur.Rank)
	}
}

func Test_statisticDomain_GetTopContributors_limit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticDomain := domain.NewStatisticDomain(repository.NewStatisticRepository())

	resp, err := statisticDomain.GetTopContributors(ctx, &model.GetTopContributorsRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Contributors, 2)
	require.Equal(t, testutil.User1.ID, resp.Contributors[0].UserID)
	require.Equal(t, testutil.User6.ID, resp.Contributors[1].UserID)
}

func Test_statisticDomain_GetUserStats(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	statisticDomain := domain.NewStatisticDomain(repository.NewStatisticRepository())

	// An empty user id falls back to the requester.
	resp, err := statisticDomain.GetUserStats(ctx, &model.GetUserStatsRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.Stats.UserID)
	require.Equal(t, int64(3), resp.Stats.ProjectsCreated)
	require.Equal(t, int64(1), resp.Stats.ProjectsCollaborated)
	require.Equal(t, int64(13), resp.Stats.ActivityScore)

	_, err = statisticDomain.GetUserStats(ctx, &model.GetUserStatsRequest{UserID: "missing-user"})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found user"), err)
}

// The ranking projection and the per-user projection must agree on the
// activity score of every user.
func Test_statisticDomain_scoreAgreement(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticDomain := domain.NewStatisticDomain(repository.NewStatisticRepository())

	contributors, err := statisticDomain.GetTopContributors(ctx, &model.GetTopContributorsRequest{Limit: 50})
	require.NoError(t, err)

	for _, contributor := range contributors.Contributors {
		stats, err := statisticDomain.GetUserStats(ctx, &model.GetUserStatsRequest{UserID: contributor.UserID})
		require.NoError(t, err)
		require.Equal(t, contributor.ActivityScore, stats.Stats.ActivityScore)
	}
}

func Test_statisticDomain_GetRecentActivity(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticDomain := domain.NewStatisticDomain(repository.NewStatisticRepository())

	// The default limit covers the whole 9-event fixture feed.
	resp, err := statisticDomain.GetRecentActivity(ctx, &model.GetRecentActivityRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 9)
	require.Equal(t, "comment_posted", resp.Activities[0].ActivityType)
	require.Equal(t, testutil.Comment1.ID, resp.Activities[0].EntityID)

	resp, err = statisticDomain.GetRecentActivity(ctx, &model.GetRecentActivityRequest{Limit: 4})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 4)
}
