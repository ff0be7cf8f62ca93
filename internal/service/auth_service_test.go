package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/pkg/apperrors"
	"pocket-pm-be/internal/repository/memory"
)

func newAuthServiceForTest() IAuthService {
	factory := memory.NewRepositoryFactory(memory.NewStore())
	sessionRepo := memory.NewSessionRepository(time.Hour)
	return NewAuthService(factory, sessionRepo)
}

func registerTestUser(t *testing.T, svc IAuthService) *dto.RegisterResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pm@example.com",
		Password: "supersecret",
		FullName: "Product Manager",
	})
	assert.NoError(t, err)
	return res
}

func TestAuthRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest()

	registered := registerTestUser(t, svc)
	assert.Equal(t, "pm@example.com", registered.Email)
	assert.NotEqual(t, uuid.Nil, registered.Id)

	res, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "pm@example.com",
		Password: "supersecret",
	}, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Empty(t, res.RefreshToken)
}

func TestAuthRegisterDuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest()
	registerTestUser(t, svc)

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "pm@example.com",
		Password: "anotherpass",
		FullName: "Someone Else",
	})
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest()
	registerTestUser(t, svc)

	_, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "pm@example.com",
		Password: "wrongpassword",
	}, "127.0.0.1", "test-agent")
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
}

func TestAuthLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest()

	_, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever123",
	}, "127.0.0.1", "test-agent")
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
}

func TestAuthRememberMeIssuesRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest()
	registerTestUser(t, svc)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:      "pm@example.com",
		Password:   "supersecret",
		RememberMe: true,
	}, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, login.RefreshToken)

	refreshed, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthLogoutRevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest()
	registerTestUser(t, svc)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:      "pm@example.com",
		Password:   "supersecret",
		RememberMe: true,
	}, "127.0.0.1", "test-agent")
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(ctx, &dto.LogoutRequest{RefreshToken: login.RefreshToken}))

	_, err = svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
}

func TestAuthProfile(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest()
	registered := registerTestUser(t, svc)

	profile, err := svc.Profile(ctx, registered.Id)
	assert.NoError(t, err)
	assert.Equal(t, "pm@example.com", profile.Email)
	assert.Equal(t, "Product Manager", profile.FullName)

	_, err = svc.Profile(ctx, uuid.New())
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
