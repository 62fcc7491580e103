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

func newIssueDomain() domain.IssueDomain {
	return domain.NewIssueDomain(
		repository.NewIssueRepository(),
		repository.NewProjectRepository(),
		repository.NewCollaboratorRepository(),
		repository.NewUserRepository(),
	)
}

func Test_issueDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	issueDomain := newIssueDomain()

	resp, err := issueDomain.Create(ctx, &model.CreateIssueRequest{
		ProjectID: testutil.Project1.ID,
		Title:     "Dark mode please",
	})
	require.NoError(t, err)
	require.Equal(t, "open", resp.Issue.Status)

	_, err = issueDomain.Create(ctx, &model.CreateIssueRequest{
		ProjectID: "missing-project",
		Title:     "Nope",
	})
	require.Error(t, err)
}

func Test_issueDomain_UpdateStatus(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	issueDomain := newIssueDomain()

	_, err := issueDomain.UpdateStatus(ctx, &model.UpdateIssueStatusRequest{
		IssueID: testutil.Issue1.ID,
		Status:  "fixed",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid status fixed"), err)

	resp, err := issueDomain.UpdateStatus(ctx, &model.UpdateIssueStatusRequest{
		IssueID: testutil.Issue1.ID,
		Status:  "closed",
	})
	require.NoError(t, err)
	require.Equal(t, "closed", resp.Issue.Status)

	// Only the project owner manages its issues.
	otherCtx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(otherCtx)
	_, err = issueDomain.UpdateStatus(otherCtx, &model.UpdateIssueStatusRequest{
		IssueID: testutil.Issue1.ID,
		Status:  "closed",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)
}

func Test_issueDomain_Close(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	issueDomain := newIssueDomain()

	resp, err := issueDomain.Close(ctx, &model.CloseIssueRequest{
		IssueID:         testutil.Issue1.ID,
		CollaboratorIDs: []string{testutil.User3.ID, testutil.User5.ID},
	})
	require.NoError(t, err)
	require.Equal(t, "closed", resp.Issue.Status)
	require.ElementsMatch(t, []string{testutil.User3.ID, testutil.User5.ID}, resp.Collaborators)

	// Closing again with an overlapping credit list is idempotent.
	resp, err = issueDomain.Close(ctx, &model.CloseIssueRequest{
		IssueID:         testutil.Issue1.ID,
		CollaboratorIDs: []string{testutil.User3.ID},
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{testutil.User3.ID, testutil.User5.ID}, resp.Collaborators)
}

func Test_issueDomain_Close_unknownCollaborator(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	issueDomain := newIssueDomain()

	_, err := issueDomain.Close(ctx, &model.CloseIssueRequest{
		IssueID:         testutil.Issue1.ID,
		CollaboratorIDs: []string{testutil.User3.ID, "missing-user"},
	})
	require.Error(t, err)

	// Nothing was applied, the issue stays open with no credits.
	issue, err := repository.NewIssueRepository().GetByID(ctx, testutil.Issue1.ID)
	require.NoError(t, err)
	require.Equal(t, "open", string(issue.Status))

	collaborators, err := repository.NewCollaboratorRepository().GetByIssueID(ctx, testutil.Issue1.ID)
	require.NoError(t, err)
	require.Empty(t, collaborators)
}
