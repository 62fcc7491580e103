package domain_test

import (
	"testing"

	"github.com/forkd-labs/backend/internal/domain"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newUserDomain() domain.UserDomain {
	return domain.NewUserDomain(
		repository.NewUserRepository(),
		repository.NewSkillRepository(),
	)
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	userDomain := newUserDomain()

	resp, err := userDomain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Email, resp.User.Email)
	require.ElementsMatch(t, []string{"Go", "Distributed Systems"}, resp.User.Skills)
}

func Test_userDomain_GetUser(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	userDomain := newUserDomain()

	resp, err := userDomain.GetUser(ctx, &model.GetUserRequest{UserID: testutil.User4.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.User4.FullName, resp.User.FullName)

	_, err = userDomain.GetUser(ctx, &model.GetUserRequest{UserID: "missing-user"})
	require.Error(t, err)
}

func Test_userDomain_GetList(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	userDomain := newUserDomain()

	resp, err := userDomain.GetList(ctx, &model.GetListUserRequest{Limit: 3})
	require.NoError(t, err)
	require.Len(t, resp.Users, 3)

	// The listing never contains the requester themselves, and the limit is
	// clamped to the configured maximum of 50.
	resp, err = userDomain.GetList(ctx, &model.GetListUserRequest{Limit: 999})
	require.NoError(t, err)
	require.Len(t, resp.Users, 5)
	for _, user := range resp.Users {
		require.NotEqual(t, testutil.User1.ID, user.ID)
	}

	resp, err = userDomain.GetList(ctx, &model.GetListUserRequest{Q: "bob"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	require.Equal(t, testutil.User2.ID, resp.Users[0].ID)

	_, err = userDomain.GetList(ctx, &model.GetListUserRequest{Limit: -1})
	require.Error(t, err)
}

func Test_userDomain_Update(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User4.ID)
	testutil.CreateFixtureDb(ctx)
	userDomain := newUserDomain()

	resp, err := userDomain.Update(ctx, &model.UpdateUserRequest{
		Bio:    "Third year CS student",
		Skills: []string{"Rust", "rust", " SQL "},
	})
	require.NoError(t, err)
	require.Equal(t, "Third year CS student", resp.User.Bio)
	// Skill duplicates are dropped case-insensitively.
	require.ElementsMatch(t, []string{"Rust", "SQL"}, resp.User.Skills)
}
