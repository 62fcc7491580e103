package domain_test

import (
	"testing"

	"github.com/forkd-labs/backend/internal/domain"
	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/testutil"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newAuthDomain() domain.AuthDomain {
	return domain.NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewSkillRepository(),
		repository.NewVerificationTokenRepository(),
	)
}

func Test_authDomain_Register(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	authDomain := newAuthDomain()

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Email:    "grace@campus.edu",
		Password: "supersecret",
		FullName: "Grace Ho",
		Skills:   []string{"Haskell", "haskell", "SQL"},
	})
	require.NoError(t, err)

	user, err := repository.NewUserRepository().GetByEmail(ctx, "grace@campus.edu")
	require.NoError(t, err)
	require.False(t, user.IsVerified)

	skills, err := repository.NewSkillRepository().GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, skills, 2)

	var token entity.VerificationToken
	err = xcontext.DB(ctx).Take(&token, "user_id=?", user.ID).Error
	require.NoError(t, err)
}

func Test_authDomain_Register_invalid(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	authDomain := newAuthDomain()

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Email:    "grace@gmail.com",
		Password: "supersecret",
		FullName: "Grace Ho",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest,
		"Please register with your @campus.edu email"), err)

	_, err = authDomain.Register(ctx, &model.RegisterRequest{
		Email:    "grace@campus.edu",
		Password: "short",
		FullName: "Grace Ho",
	})
	require.Error(t, err)

	_, err = authDomain.Register(ctx, &model.RegisterRequest{
		Email:    testutil.User1.Email,
		Password: "supersecret",
		FullName: "Alice Again",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.AlreadyExists, "This email is already registered"), err)
}

func Test_authDomain_VerifyEmail(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	authDomain := newAuthDomain()

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Email:    "grace@campus.edu",
		Password: "supersecret",
		FullName: "Grace Ho",
	})
	require.NoError(t, err)

	user, err := repository.NewUserRepository().GetByEmail(ctx, "grace@campus.edu")
	require.NoError(t, err)

	var token entity.VerificationToken
	require.NoError(t, xcontext.DB(ctx).Take(&token, "user_id=?", user.ID).Error)

	_, err = authDomain.VerifyEmail(ctx, &model.VerifyEmailRequest{Token: "wrong-token"})
	require.Error(t, err)

	_, err = authDomain.VerifyEmail(ctx, &model.VerifyEmailRequest{Token: token.Token})
	require.NoError(t, err)

	user, err = repository.NewUserRepository().GetByEmail(ctx, "grace@campus.edu")
	require.NoError(t, err)
	require.True(t, user.IsVerified)

	// The token is single use.
	_, err = authDomain.VerifyEmail(ctx, &model.VerifyEmailRequest{Token: token.Token})
	require.Error(t, err)
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	authDomain := newAuthDomain()

	resp, err := authDomain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: testutil.PlainPassword,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.User.ID)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	var info model.AccessToken
	require.NoError(t, xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &info))
	require.Equal(t, testutil.User1.ID, info.ID)

	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: "wrong-password",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid email or password"), err)

	// Dave never verified his email.
	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User4.Email,
		Password: testutil.PlainPassword,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.EmailNotVerified,
		"Please verify your email before logging in"), err)
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	authDomain := newAuthDomain()

	login, err := authDomain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: testutil.PlainPassword,
	})
	require.NoError(t, err)

	resp, err := authDomain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	_, err = authDomain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: "garbage"})
	require.Error(t, err)
}
