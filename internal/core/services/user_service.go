package services

import (
	"context"
	"errors"

	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/adapters/persistence/repositories"
	"og-partnerhub/internal/core/domain"
	"og-partnerhub/internal/pkg/password"
	"og-partnerhub/internal/pkg/validation"

	"gorm.io/gorm"
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserCreateInput represents input for creating a user
type UserCreateInput struct {
	Email       string                 `json:"email" validate:"required,max=255,email_format"`
	Password    string                 `json:"password" validate:"required,min=8,max=100"`
	Name        string                 `json:"name" validate:"required,max=100"`
	Role        domain.UserRole        `json:"role" validate:"omitempty,oneof=admin manager expert"`
	Permissions map[string]interface{} `json:"permissions"`
}

// UserUpdateInput represents partial update input. Only non-nil fields
// are applied; omitted fields are left untouched.
type UserUpdateInput struct {
	Name        *string                 `json:"name" validate:"omitempty,max=100"`
	Role        *domain.UserRole        `json:"role" validate:"omitempty,oneof=admin manager expert"`
	IsActive    *bool                   `json:"is_active"`
	Permissions *map[string]interface{} `json:"permissions"`
}

// ListUsersOutput represents list users output
type ListUsersOutput struct {
	Users []*models.UserResponse `json:"users"`
	Total int64                  `json:"total"`
}

// CreateUser creates a new user (admin operation)
func (s *UserService) CreateUser(ctx context.Context, input *UserCreateInput) (*models.UserResponse, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleExpert
	}

	perms := models.JSONMap(input.Permissions)
	if perms == nil {
		perms = models.JSONMap{}
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: hashed,
		Name:         input.Name,
		Role:         role,
		IsActive:     true,
		Permissions:  perms,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// GetUser gets a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// ListUsers lists users with pagination
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) (*ListUsersOutput, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}

	return &ListUsersOutput{Users: responses, Total: total}, nil
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UserUpdateInput) (*models.UserResponse, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Permissions != nil {
		user.Permissions = models.JSONMap(*input.Permissions)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// DeleteUser soft deletes a user. Deletion is restricted while the user
// is still referenced as the creator of any expert.
func (s *UserService) DeleteUser(ctx context.Context, id uint, actorID uint) error {
	if id == actorID {
		return domain.ErrForbidden
	}

	_, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	referenced, err := s.userRepo.CountCreatedExperts(ctx, id)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return domain.ErrUserReferenced
	}

	return s.userRepo.Delete(ctx, id)
}
