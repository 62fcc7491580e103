package domain_test

import (
	"testing"

	"github.com/forkd-labs/backend/internal/domain"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/testutil"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newProjectDomain() domain.ProjectDomain {
	return domain.NewProjectDomain(
		repository.NewProjectRepository(),
		repository.NewTagRepository(),
		repository.NewUserRepository(),
		repository.NewIssueRepository(),
		repository.NewCollaboratorRepository(),
		repository.NewLikeRepository(),
		repository.NewCommentRepository(),
		repository.NewStatisticRepository(),
	)
}

func Test_projectDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User4.ID)
	testutil.CreateFixtureDb(ctx)
	projectDomain := newProjectDomain()

	resp, err := projectDomain.Create(ctx, &model.CreateProjectRequest{
		Title:       "Flashcard Battle",
		Description: "Quiz your classmates",
		Tags:        []string{"Python", " python ", "Web", "web"},
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User4.ID, resp.Project.CreatedBy)
	require.Equal(t, testutil.User4.FullName, resp.Project.OwnerName)
	// Tag duplicates are dropped case-insensitively, first spelling wins.
	require.Equal(t, []string{"Python", "Web"}, resp.Project.Tags)

	_, err = projectDomain.Create(ctx, &model.CreateProjectRequest{Title: "  "})
	require.Error(t, err)
}

func Test_projectDomain_Get(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	projectDomain := newProjectDomain()

	resp, err := projectDomain.Get(ctx, &model.GetProjectRequest{ProjectID: testutil.Project1.ID})
	require.NoError(t, err)
	require.Equal(t, int64(2), resp.Project.LikesCount)
	require.Equal(t, int64(1), resp.Project.CommentsCount)
	require.Equal(t, int64(1), resp.Project.OpenIssues)
	require.Equal(t, int64(0), resp.Project.ClosedIssues)
	require.Equal(t, int64(3), resp.Project.EngagementScore)
	require.ElementsMatch(t, []string{"Go", "Web"}, resp.Project.Tags)

	_, err = projectDomain.Get(ctx, &model.GetProjectRequest{ProjectID: "missing-project"})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found project"), err)
}

func Test_projectDomain_Update(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	projectDomain := newProjectDomain()

	// Only the owner can update.
	_, err := projectDomain.Update(ctx, &model.UpdateProjectRequest{
		ProjectID: testutil.Project1.ID,
		Title:     "Hijacked",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)

	resp, err := projectDomain.Update(ctx, &model.UpdateProjectRequest{
		ProjectID: testutil.Project4.ID,
		Title:     "Campus Map v2",
		Tags:      []string{"maps"},
	})
	require.NoError(t, err)
	require.Equal(t, "Campus Map v2", resp.Project.Title)
	require.Equal(t, []string{"maps"}, resp.Project.Tags)
}

func Test_projectDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	projectDomain := newProjectDomain()

	_, err := projectDomain.Delete(ctx, &model.DeleteProjectRequest{ProjectID: testutil.Project4.ID})
	require.NoError(t, err)

	_, err = projectDomain.Get(ctx, &model.GetProjectRequest{ProjectID: testutil.Project4.ID})
	require.Error(t, err)

	// Dependents went with the project.
	var likes int64
	require.NoError(t, xcontext.DB(ctx).
		Table("likes").Where("project_id=?", testutil.Project4.ID).Count(&likes).Error)
	require.Equal(t, int64(0), likes)

	var collaborators int64
	require.NoError(t, xcontext.DB(ctx).
		Table("collaborators").
		Where("issue_id IN (?)", []string{testutil.Issue2.ID, testutil.Issue3.ID}).
		Count(&collaborators).Error)
	require.Equal(t, int64(0), collaborators)

	// The read model tolerates the cascade, Alice loses her collaboration
	// credits without any query failing.
	statisticDomain := domain.NewStatisticDomain(repository.NewStatisticRepository())
	stats, err := statisticDomain.GetUserStats(ctx, &model.GetUserStatsRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, int64(0), stats.Stats.IssuesCollaborated)
	require.Equal(t, int64(0), stats.Stats.ProjectsCollaborated)
}

func Test_projectDomain_GetMyProjects(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	projectDomain := newProjectDomain()

	resp, err := projectDomain.GetMyProjects(ctx, &model.GetMyProjectsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 3)

	byUser, err := projectDomain.GetByUser(ctx, &model.GetProjectsByUserRequest{UserID: testutil.User3.ID})
	require.NoError(t, err)
	require.Len(t, byUser.Projects, 1)
	require.Equal(t, testutil.Project5.ID, byUser.Projects[0].ID)
	require.Equal(t, []string{"Python"}, byUser.Projects[0].Tags)

	_, err = projectDomain.GetByUser(ctx, &model.GetProjectsByUserRequest{UserID: "missing-user"})
	require.Error(t, err)
}
