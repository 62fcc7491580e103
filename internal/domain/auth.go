package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/crypto"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *model.VerifyEmailRequest) (*model.VerifyEmailResponse, error)
	ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) (*model.ResendVerificationResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, req *model.RefreshTokenRequest) (*model.RefreshTokenResponse, error)
}

type authDomain struct {
	userRepo              repository.UserRepository
	skillRepo             repository.SkillRepository
	verificationTokenRepo repository.VerificationTokenRepository
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	skillRepo repository.SkillRepository,
	verificationTokenRepo repository.VerificationTokenRepository,
) *authDomain {
	return &authDomain{
		userRepo:              userRepo,
		skillRepo:             skillRepo,
		verificationTokenRepo: verificationTokenRepo,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	campusDomain := xcontext.Configs(ctx).Auth.CampusEmailDomain
	if !strings.HasSuffix(email, "@"+campusDomain) {
		return nil, errorx.New(errorx.BadRequest,
			"Please register with your @%s email", campusDomain)
	}

	if len(req.Password) < 8 {
		return nil, errorx.New(errorx.BadRequest, "Password must have at least 8 characters")
	}

	if req.FullName == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty full name")
	}

	_, err := d.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This email is already registered")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash the password: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Email:          email,
		HashedPassword: hashedPassword,
		FullName:       req.FullName,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	if len(req.Skills) > 0 {
		if err := d.skillRepo.CreateMany(ctx, dedupSkills(user.ID, req.Skills)); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create user skills: %v", err)
			return nil, errorx.Unknown
		}
	}

	if err := d.issueVerificationToken(ctx, user); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.RegisterResponse{}, nil
}

func (d *authDomain) VerifyEmail(
	ctx context.Context, req *model.VerifyEmailRequest,
) (*model.VerifyEmailResponse, error) {
	token, err := d.verificationTokenRepo.GetByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.BadRequest, "Invalid verification token")
		}

		xcontext.Logger(ctx).Errorf("Cannot get verification token: %v", err)
		return nil, errorx.Unknown
	}

	if time.Now().After(token.ExpiredAt) {
		return nil, errorx.New(errorx.TokenExpired, "The verification token is expired")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.userRepo.UpdateByID(ctx, token.UserID, &entity.User{IsVerified: true})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot verify user: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.verificationTokenRepo.DeleteByUserID(ctx, token.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete verification tokens: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.VerifyEmailResponse{}, nil
}

func (d *authDomain) ResendVerification(
	ctx context.Context, req *model.ResendVerificationRequest,
) (*model.ResendVerificationResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if user.IsVerified {
		return nil, errorx.New(errorx.BadRequest, "This email is already verified")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.verificationTokenRepo.DeleteByUserID(ctx, user.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete verification tokens: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.issueVerificationToken(ctx, user); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.ResendVerificationResponse{}, nil
}

func (d *authDomain) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if err := crypto.ComparePassword(user.HashedPassword, req.Password); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
	}

	if !user.IsVerified {
		return nil, errorx.New(errorx.EmailNotVerified, "Please verify your email before logging in")
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	skills, err := d.skillRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user skills: %v", err)
		return nil, errorx.Unknown
	}

	d.saveSession(ctx, user.ID)

	return &model.LoginResponse{
		User:         model.ConvertUser(user, skills),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) Refresh(
	ctx context.Context, req *model.RefreshTokenRequest,
) (*model.RefreshTokenResponse, error) {
	var info model.RefreshToken
	if err := xcontext.TokenEngine(ctx).Verify(req.RefreshToken, &info); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid refresh token")
	}

	user, err := d.userRepo.GetByID(ctx, info.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid refresh token")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) issueVerificationToken(ctx context.Context, user *entity.User) error {
	token, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate verification token: %v", err)
		return errorx.Unknown
	}

	err = d.verificationTokenRepo.Create(ctx, &entity.VerificationToken{
		Token:     token,
		UserID:    user.ID,
		ExpiredAt: time.Now().Add(xcontext.Configs(ctx).Auth.VerificationTokenLifetime),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create verification token: %v", err)
		return errorx.Unknown
	}

	// No mailer is wired up yet, the token lands in the logs.
	xcontext.Logger(ctx).Infof("Verification token for %s: %s", user.Email, token)
	return nil
}

func (d *authDomain) generateTokens(ctx context.Context, user *entity.User) (string, string, error) {
	cfg := xcontext.Configs(ctx).Auth
	engine := xcontext.TokenEngine(ctx)

	accessToken, err := engine.Generate(cfg.AccessToken.Expiration, model.AccessToken{
		ID:    user.ID,
		Name:  user.FullName,
		Email: user.Email,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return "", "", errorx.Unknown
	}

	refreshToken, err := engine.Generate(cfg.RefreshToken.Expiration, model.RefreshToken{
		UserID: user.ID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token: %v", err)
		return "", "", errorx.Unknown
	}

	return accessToken, refreshToken, nil
}

func (d *authDomain) saveSession(ctx context.Context, userID string) {
	r := xcontext.HTTPRequest(ctx)
	w := xcontext.HTTPWriter(ctx)
	if r == nil || w == nil {
		return
	}

	session, err := xcontext.SessionStore(ctx).Get(r, xcontext.Configs(ctx).Session.Name)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get the session: %v", err)
		return
	}

	session.Values["user_id"] = userID
	if err := session.Save(r, w); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot save the session: %v", err)
	}
}
