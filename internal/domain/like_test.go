package domain_test

import (
	"testing"

	"github.com/forkd-labs/backend/internal/domain"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_likeDomain_Toggle(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User4.ID)
	testutil.CreateFixtureDb(ctx)
	likeDomain := domain.NewLikeDomain(
		repository.NewLikeRepository(),
		repository.NewProjectRepository(),
	)

	resp, err := likeDomain.Toggle(ctx, &model.ToggleLikeRequest{ProjectID: testutil.Project1.ID})
	require.NoError(t, err)
	require.True(t, resp.Liked)
	require.Equal(t, int64(3), resp.LikesCount)

	// Toggling again takes the like back.
	resp, err = likeDomain.Toggle(ctx, &model.ToggleLikeRequest{ProjectID: testutil.Project1.ID})
	require.NoError(t, err)
	require.False(t, resp.Liked)
	require.Equal(t, int64(2), resp.LikesCount)

	_, err = likeDomain.Toggle(ctx, &model.ToggleLikeRequest{ProjectID: "missing-project"})
	require.Error(t, err)
}
