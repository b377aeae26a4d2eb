package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "quizapi/internal/errors"
	"quizapi/internal/model"
	"quizapi/internal/repository"
)

// UserService exposes account operations. Rejections surface as the sentinel
// errors in internal/errors; any other non-nil error is a storage failure.
//
// Credential checks are plaintext exact-match by contract with the legacy
// clients; see the note on model.User.
type UserService interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, username, password string) (*model.User, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	ResetPassword(ctx context.Context, username, newPassword string) error
	DeleteUser(ctx context.Context, username string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over the user repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ValidateUser returns true iff a user row matches both fields exactly. Bad
// credentials are (false, nil); only storage failures return an error.
func (s *userService) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return false, nil
	}
	_, err := s.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetUserByUsername returns the user, or nil when absent.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, nil
	}
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns all users with passwords cleared. Passwords never leave
// this layer in list results.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// CreateUser persists a new user and returns it with the password cleared.
// Returns ErrUsernameTaken when the username already exists.
func (s *userService) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{Username: username, Password: password}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	created := *user
	created.Password = ""
	return &created, nil
}

// ChangePassword overwrites the password after verifying the old one.
// Returns ErrInvalidCredentials when no row matches username+oldPassword.
func (s *userService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	_, err := s.repo.FindByCredentials(ctx, username, oldPassword)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return err
	}
	return s.repo.UpdatePassword(ctx, username, newPassword)
}

// ResetPassword overwrites the password without an old-password check; this
// is the administrative path. Returns ErrUserNotFound for unknown usernames.
func (s *userService) ResetPassword(ctx context.Context, username, newPassword string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return s.repo.UpdatePassword(ctx, username, newPassword)
}

// DeleteUser removes the account. Returns ErrUserNotFound for unknown
// usernames so callers can tell a rejection from a storage failure.
func (s *userService) DeleteUser(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, username)
}
