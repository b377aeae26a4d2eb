package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "quizapi/internal/errors"
	"quizapi/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, username, newPassword string) error {
	args := m.Called(ctx, username, newPassword)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

var errStorage = gorm.ErrInvalidDB

func TestUserService_ValidateUser(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		setupMock   func(*MockUserRepository)
		expectValid bool
		expectError bool
	}{
		{
			name:     "matching credentials",
			username: "alice",
			password: "p1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByCredentials", mock.Anything, "alice", "p1").
					Return(&model.User{ID: 1, Username: "alice", Password: "p1"}, nil)
			},
			expectValid: true,
		},
		{
			name:     "wrong password is rejected, not an error",
			username: "alice",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByCredentials", mock.Anything, "alice", "wrong").
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectValid: false,
		},
		{
			name:        "blank username short-circuits without touching storage",
			username:    "   ",
			password:    "p1",
			setupMock:   func(m *MockUserRepository) {},
			expectValid: false,
		},
		{
			name:     "storage failure surfaces as an error",
			username: "alice",
			password: "p1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByCredentials", mock.Anything, "alice", "p1").
					Return(nil, errStorage)
			},
			expectValid: false,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			isValid, err := svc.ValidateUser(context.Background(), tt.username, tt.password)

			assert.Equal(t, tt.expectValid, isValid)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful creation",
			username: "alice",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "username already taken",
			username: "alice",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").
					Return(&model.User{ID: 1, Username: "alice"}, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
		{
			name:     "storage failure during lookup",
			username: "alice",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, errStorage)
			},
			expectedError: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.CreateUser(context.Background(), tt.username, "secret")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.Empty(t, user.Password, "created user must not carry the password back")
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful change",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByCredentials", mock.Anything, "alice", "old").
					Return(&model.User{ID: 1, Username: "alice"}, nil)
				m.On("UpdatePassword", mock.Anything, "alice", "new").Return(nil)
			},
		},
		{
			name: "wrong old password is rejected",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByCredentials", mock.Anything, "alice", "old").
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name: "storage failure is not a rejection",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByCredentials", mock.Anything, "alice", "old").
					Return(nil, errStorage)
			},
			expectedError: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			err := svc.ChangePassword(context.Background(), "alice", "old", "new")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ResetPassword(t *testing.T) {
	t.Run("unknown username is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo)
		err := svc.ResetPassword(context.Background(), "ghost", "new")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no old-password check on the admin path", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "alice").
			Return(&model.User{ID: 1, Username: "alice", Password: "forgotten"}, nil)
		mockRepo.On("UpdatePassword", mock.Anything, "alice", "new").Return(nil)

		svc := NewUserService(mockRepo)
		err := svc.ResetPassword(context.Background(), "alice", "new")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNotCalled(t, "FindByCredentials", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("unknown username is rejected, not an error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo)
		err := svc.DeleteUser(context.Background(), "ghost")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "alice").
			Return(&model.User{ID: 1, Username: "alice"}, nil)
		mockRepo.On("Delete", mock.Anything, "alice").Return(nil)

		svc := NewUserService(mockRepo)
		err := svc.DeleteUser(context.Background(), "alice")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ListUsers_ClearsPasswords(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything).Return([]model.User{
		{ID: 1, Username: "alice", Password: "p1"},
		{ID: 2, Username: "bob", Password: "p2"},
	}, nil)

	svc := NewUserService(mockRepo)
	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserByUsername(t *testing.T) {
	t.Run("absent user yields nil without error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo)
		user, err := svc.GetUserByUsername(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("blank username short-circuits", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo)
		user, err := svc.GetUserByUsername(context.Background(), "  ")

		assert.NoError(t, err)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})
}
