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

func newCommentDomain() domain.CommentDomain {
	return domain.NewCommentDomain(
		repository.NewCommentRepository(),
		repository.NewProjectRepository(),
		repository.NewUserRepository(),
	)
}

func Test_commentDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	commentDomain := newCommentDomain()

	resp, err := commentDomain.Create(ctx, &model.CreateCommentRequest{
		ProjectID: testutil.Project1.ID,
		Content:   "Count me in for the backend",
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User3.ID, resp.Comment.UserID)
	require.Equal(t, testutil.User3.FullName, resp.Comment.UserName)

	_, err = commentDomain.Create(ctx, &model.CreateCommentRequest{
		ProjectID: testutil.Project1.ID,
		Content:   "   ",
	})
	require.Error(t, err)
}

func Test_commentDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	commentDomain := newCommentDomain()

	// Neither the author nor the project owner.
	_, err := commentDomain.Delete(ctx, &model.DeleteCommentRequest{CommentID: testutil.Comment1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)

	// The project owner may remove any comment on their project.
	ownerCtx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ownerCtx)
	_, err = commentDomain.Delete(ownerCtx, &model.DeleteCommentRequest{CommentID: testutil.Comment1.ID})
	require.NoError(t, err)

	resp, err := commentDomain.GetByProject(ownerCtx, &model.GetProjectCommentsRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.NoError(t, err)
	require.Empty(t, resp.Comments)
}

func Test_commentDomain_GetByProject(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	commentDomain := newCommentDomain()

	resp, err := commentDomain.GetByProject(ctx, &model.GetProjectCommentsRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Comments, 1)
	require.Equal(t, testutil.Comment1.ID, resp.Comments[0].ID)
	require.Equal(t, testutil.User2.FullName, resp.Comments[0].UserName)
}
