package services

import (
	"context"
	"testing"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/core/domain"
	"og-partnerhub/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserInput() *UserCreateInput {
	return &UserCreateInput{
		Email:    "casey@ogpartner.io",
		Password: "s3cret-passw0rd",
		Name:     "Casey Nguyen",
		Role:     domain.RoleManager,
	}
}

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.CreateUser(context.Background(), validUserInput())
	require.NoError(t, err)

	assert.Equal(t, "casey@ogpartner.io", user.Email)
	assert.Equal(t, domain.RoleManager, user.Role)
	assert.True(t, user.IsActive)
	assert.NotNil(t, user.Permissions)
}

func TestCreateUserDefaultsToExpertRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	input := validUserInput()
	input.Role = ""
	user, err := svc.CreateUser(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleExpert, user.Role)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, validUserInput())
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, validUserInput())
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	cases := []struct {
		name  string
		patch func(*UserCreateInput)
	}{
		{"bad email", func(in *UserCreateInput) { in.Email = "not-an-email" }},
		{"short password", func(in *UserCreateInput) { in.Password = "short" }},
		{"missing name", func(in *UserCreateInput) { in.Name = "" }},
		{"bad role", func(in *UserCreateInput) { in.Role = "superuser" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validUserInput()
			tc.patch(input)

			_, err := svc.CreateUser(ctx, input)
			var ve *validation.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestUpdateUserPartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, validUserInput())
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateUser(ctx, user.ID, &UserUpdateInput{IsActive: &inactive})
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	// Untouched fields survive
	assert.Equal(t, "Casey Nguyen", updated.Name)
	assert.Equal(t, domain.RoleManager, updated.Role)
}

func TestDeleteUserRestrictedWhileReferenced(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, validUserInput())
	require.NoError(t, err)
	repo.createdExperts[user.ID] = 2

	err = svc.DeleteUser(ctx, user.ID, user.ID+1)
	assert.ErrorIs(t, err, domain.ErrUserReferenced)
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	repo.createdExperts[user.ID] = 0
	err = svc.DeleteUser(ctx, user.ID, user.ID+1)
	assert.NoError(t, err)
}

func TestDeleteUserSelf(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, validUserInput())
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, user.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.DeleteUser(context.Background(), 999, 1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserResponseHidesPasswordHash(t *testing.T) {
	u := &models.User{Email: "a@b.co", PasswordHash: "hash", Name: "A"}
	resp := u.ToResponse()
	assert.Equal(t, "a@b.co", resp.Email)
	// UserResponse has no password field at all; nothing to leak.
	assert.NotContains(t, []string{resp.Email, resp.Name}, "hash")
}
