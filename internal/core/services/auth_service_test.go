package services

import (
	"context"
	"testing"

	"og-partnerhub/internal/config"
	"og-partnerhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceFixture() (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	return NewAuthService(userRepo, cfg), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthServiceFixture()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{
		Email:    "jordan@atlasfit.example",
		Password: "long-enough-pass",
		Name:     "Jordan Reed",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleExpert, reg.User.Role)
	assert.NotEmpty(t, reg.AccessToken)
	assert.NotEmpty(t, reg.RefreshToken)

	login, err := svc.Login(ctx, &LoginInput{
		Email:    "jordan@atlasfit.example",
		Password: "long-enough-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthServiceFixture()
	ctx := context.Background()

	input := &RegisterInput{Email: "a@b.co", Password: "long-enough-pass", Name: "A"}
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthServiceFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "a@b.co", Password: "long-enough-pass", Name: "A"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "a@b.co", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@b.co", Password: "long-enough-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, userRepo := newAuthServiceFixture()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{Email: "a@b.co", Password: "long-enough-pass", Name: "A"})
	require.NoError(t, err)

	stored, _ := userRepo.GetByID(ctx, reg.User.ID)
	stored.IsActive = false
	require.NoError(t, userRepo.Update(ctx, stored))

	_, err = svc.Login(ctx, &LoginInput{Email: "a@b.co", Password: "long-enough-pass"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthServiceFixture()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{Email: "a@b.co", Password: "long-enough-pass", Name: "A"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, reg.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	// Access tokens are signed with a different secret and must not refresh
	_, err = svc.Refresh(ctx, reg.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
