package repository_test

import (
	"testing"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_statisticRepository_GetProjectSummaries(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	summaries, err := statisticRepo.GetProjectSummaries(ctx, repository.SummaryFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 7)

	byID := map[string]entity.ProjectSummary{}
	for _, summary := range summaries {
		byID[summary.ProjectID] = summary
	}

	p1 := byID[testutil.Project1.ID]
	require.Equal(t, int64(2), p1.LikesCount)
	require.Equal(t, int64(1), p1.CommentsCount)
	require.Equal(t, int64(1), p1.OpenIssues)
	require.Equal(t, int64(0), p1.ClosedIssues)
	require.Equal(t, int64(3), p1.EngagementScore())
	require.Equal(t, testutil.User1.FullName, p1.OwnerName)

	p4 := byID[testutil.Project4.ID]
	require.Equal(t, int64(2), p4.LikesCount)
	require.Equal(t, int64(0), p4.OpenIssues)
	require.Equal(t, int64(2), p4.ClosedIssues)

	// Untouched projects aggregate to zero, not to missing rows.
	p3 := byID[testutil.Project3.ID]
	require.Equal(t, int64(0), p3.LikesCount)
	require.Equal(t, int64(0), p3.CommentsCount)
	require.Equal(t, int64(0), p3.EngagementScore())
}

func Test_statisticRepository_GetProjectSummaries_filters(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	needHelp, err := statisticRepo.GetProjectSummaries(ctx, repository.SummaryFilter{NeedsHelp: true})
	require.NoError(t, err)
	require.Len(t, needHelp, 1)
	require.Equal(t, testutil.Project1.ID, needHelp[0].ProjectID)

	excluded, err := statisticRepo.GetProjectSummaries(ctx, repository.SummaryFilter{
		ExcludeOwner: testutil.User1.ID,
	})
	require.NoError(t, err)
	require.Len(t, excluded, 4)
	for _, summary := range excluded {
		require.NotEqual(t, testutil.User1.ID, summary.CreatedBy)
	}

	subset, err := statisticRepo.GetProjectSummaries(ctx, repository.SummaryFilter{
		ProjectIDs: []string{testutil.Project1.ID, testutil.Project4.ID},
	})
	require.NoError(t, err)
	require.Len(t, subset, 2)
}

func Test_statisticRepository_GetContributorRanks(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	rows, err := statisticRepo.GetContributorRanks(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	byID := map[string]entity.ContributorRank{}
	for _, row := range rows {
		byID[row.UserID] = row
	}

	alice := byID[testutil.User1.ID]
	require.Equal(t, int64(3), alice.ProjectsCreated)
	require.Equal(t, int64(2), alice.IssuesCollaborated)
	require.Equal(t, int64(0), alice.CommentsMade)
	require.Equal(t, int64(13), alice.ActivityScore())

	frank := byID[testutil.User6.ID]
	require.Equal(t, int64(5), frank.ActivityScore())

	dave := byID[testutil.User4.ID]
	require.Equal(t, int64(0), dave.ActivityScore())
}

func Test_statisticRepository_GetUserActivity(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	alice, err := statisticRepo.GetUserActivity(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), alice.ProjectsCreated)
	require.Equal(t, int64(2), alice.IssuesCollaborated)
	// Both collaborated issues belong to the same project.
	require.Equal(t, int64(1), alice.ProjectsCollaborated)
	require.Equal(t, int64(1), alice.LikesGiven)
	require.Equal(t, int64(0), alice.CommentsMade)
	require.Equal(t, int64(2), alice.SkillCount)
	require.Equal(t, int64(13), alice.ActivityScore())

	// A known user with no activity yields a zero row, not an error.
	dave, err := statisticRepo.GetUserActivity(ctx, testutil.User4.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), dave.ProjectsCreated)
	require.Equal(t, int64(2), dave.SkillCount)

	_, err = statisticRepo.GetUserActivity(ctx, "missing-user")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_statisticRepository_GetRecentActivity(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	events, err := statisticRepo.GetRecentActivity(ctx, 100)
	require.NoError(t, err)
	require.Len(t, events, 9)

	for i := 1; i < len(events); i++ {
		require.False(t, events[i-1].ActivityDate.Before(events[i].ActivityDate))
	}

	// Likes never show up in the feed.
	for _, event := range events {
		require.Contains(t,
			[]string{entity.ActivityProjectCreated, entity.ActivityCommentPosted},
			event.ActivityType)
	}

	require.Equal(t, entity.ActivityCommentPosted, events[0].ActivityType)
	require.Equal(t, testutil.Comment1.ID, events[0].EntityID)
	require.Equal(t, testutil.Project1.Title, events[0].EntityTitle)
	require.Equal(t, testutil.User2.FullName, events[0].ActorName)

	limited, err := statisticRepo.GetRecentActivity(ctx, 3)
	require.NoError(t, err)
	require.Len(t, limited, 3)
}

func Test_statisticRepository_GetNetworkProjectIDs(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	// Alice shares likes on Project4 with Carol and shares Issue2 with Frank.
	ids, err := statisticRepo.GetNetworkProjectIDs(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{testutil.Project5.ID, testutil.Project7.ID}, ids)

	// Carol shares likes on Project1 with Bob and on Project4 with Alice.
	ids, err = statisticRepo.GetNetworkProjectIDs(ctx, testutil.User3.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		testutil.Project1.ID, testutil.Project2.ID, testutil.Project3.ID, testutil.Project4.ID,
	}, ids)

	for _, id := range ids {
		require.NotEqual(t, testutil.Project5.ID, id)
	}

	// Dave has no shared likes or collaborations.
	ids, err = statisticRepo.GetNetworkProjectIDs(ctx, testutil.User4.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func Test_statisticRepository_GetSkillMatches(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statisticRepo := repository.NewStatisticRepository()

	// Matching is case-folded on both sides.
	matches, err := statisticRepo.GetSkillMatches(ctx, []string{"python", "react"}, testutil.User4.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, testutil.Project5.ID, matches[0].ProjectID)
	require.Equal(t, int64(1), matches[0].Matches)

	matches, err = statisticRepo.GetSkillMatches(ctx, []string{"GO"}, testutil.User4.ID)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// The requester's own projects never match.
	matches, err = statisticRepo.GetSkillMatches(ctx, []string{"go"}, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, testutil.Project6.ID, matches[0].ProjectID)
}
