package services

import (
	"context"
	"errors"
	"strings"

	"github.com/naveen/management/internal/app/models"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/app/repositories"
	"github.com/naveen/management/internal/pkg/apperrors"
	"github.com/naveen/management/internal/pkg/helpers"
)

// UserStore is the store access the user service needs.
type UserStore interface {
	List(ctx context.Context) ([]*models.User, error)
	ListNewestFirst(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User, withPassword bool) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles user-related operations
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// ListUsers retrieves all users in natural table order.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return users, nil
}

// ListUsersNewestFirst retrieves all users ordered newest-first.
func (s *UserService) ListUsersNewestFirst(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return user, nil
}

// CreateUser validates and creates a new user, returning it with its
// assigned ID.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.NewValidationError("Missing required fields: username, email, and password are required")
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Phone:    helpers.NullableString(req.Phone),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserDuplicate) {
			return nil, apperrors.NewConflictError(apperrors.MsgUserDuplicate)
		}
		return nil, apperrors.NewStoreError(err)
	}

	return user, nil
}

// UpdateUser validates and replaces a user's fields. An empty password
// leaves the stored password unchanged.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("Username and email are required")
	}

	withPassword := strings.TrimSpace(req.Password) != ""

	user := &models.User{
		ID:       id,
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Phone:    helpers.NullableString(req.Phone),
	}
	if withPassword {
		user.Password = req.Password
	}

	if err := s.users.Update(ctx, user, withPassword); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.NewNotFoundError("User not found")
		case errors.Is(err, repositories.ErrUserDuplicate):
			return nil, apperrors.NewConflictError(apperrors.MsgUserDuplicate)
		default:
			return nil, apperrors.NewStoreError(err)
		}
	}

	return user, nil
}

// DeleteUser removes a user. Deleting a missing ID reports success.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}
