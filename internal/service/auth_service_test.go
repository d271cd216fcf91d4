package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/imammufiid/bnyu-admin/internal/auth"
	"github.com/imammufiid/bnyu-admin/internal/errors"
	"github.com/imammufiid/bnyu-admin/internal/model"
)

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of auth.SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Put(ctx context.Context, sessionID string, identity auth.Identity, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, identity, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*auth.Identity, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		adminName     string
		email         string
		password      string
		setupMock     func(*MockAdminRepository)
		expectedError error
	}{
		{
			name:      "successful registration",
			adminName: "Mufid",
			email:     "admin@bnyu.app",
			password:  "password123",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@bnyu.app").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Admin")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "email already taken",
			adminName: "Mufid",
			email:     "existing@bnyu.app",
			password:  "password123",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "existing@bnyu.app").
					Return(&model.Admin{Email: "existing@bnyu.app"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, new(MockSessionStore))

			admin, err := service.Register(context.Background(), tt.adminName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, admin)
				assert.Equal(t, tt.email, admin.Email)
				assert.Equal(t, tt.adminName, admin.Name)
				assert.NotEmpty(t, admin.PasswordHash)
				assert.NotEqual(t, tt.password, admin.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	adminID := uuid.New()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockAdminRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "admin@bnyu.app",
			password: "password123",
			setupMock: func(mRepo *MockAdminRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@bnyu.app").Return(&model.Admin{
					ID:           adminID,
					Name:         "Mufid",
					Email:        "admin@bnyu.app",
					PasswordHash: string(hashedPassword),
				}, nil)
				mSessions.On("Put", mock.Anything, mock.Anything, auth.Identity{
					AdminID: adminID.String(),
					Name:    "Mufid",
					Email:   "admin@bnyu.app",
				}, auth.SessionExpiry).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "no account for email",
			email:    "nobody@bnyu.app",
			password: "password123",
			setupMock: func(mRepo *MockAdminRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@bnyu.app").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNoAccount,
		},
		{
			name:     "wrong password",
			email:    "admin@bnyu.app",
			password: "wrong-password",
			setupMock: func(mRepo *MockAdminRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@bnyu.app").Return(&model.Admin{
					ID:           adminID,
					Email:        "admin@bnyu.app",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: errors.ErrIncorrectPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockSessions)

			token, identity, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, identity)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, identity)
				assert.Equal(t, tt.email, identity.Email)

				// The token's session ID keys the persisted identity.
				sessionID, err := jwtService.ExtractSessionID(token)
				assert.NoError(t, err)
				assert.NotEmpty(t, sessionID)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	mockSessions := new(MockSessionStore)
	mockSessions.On("Delete", mock.Anything, "session-1").Return(nil)

	service := NewAuthService(new(MockAdminRepository), auth.NewJWTService("test-secret"), mockSessions)
	err := service.Logout(context.Background(), "session-1")

	assert.NoError(t, err)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_Identity(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockSessionStore)
		expectedError error
	}{
		{
			name: "resolves stored identity",
			setupMock: func(m *MockSessionStore) {
				m.On("Get", mock.Anything, "session-1").Return(&auth.Identity{
					AdminID: uuid.New().String(),
					Name:    "Mufid",
					Email:   "admin@bnyu.app",
				}, nil)
			},
		},
		{
			name: "missing session reads as logged out",
			setupMock: func(m *MockSessionStore) {
				m.On("Get", mock.Anything, "session-1").Return(nil, assert.AnError)
			},
			expectedError: errors.ErrInvalidSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockSessions)

			service := NewAuthService(new(MockAdminRepository), auth.NewJWTService("test-secret"), mockSessions)
			identity, err := service.Identity(context.Background(), "session-1")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, identity)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "admin@bnyu.app", identity.Email)
			}
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	adminID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockAdminRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name: "updates name and rewrites the session",
			setupMock: func(mRepo *MockAdminRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@bnyu.app").Return(&model.Admin{
					ID:    adminID,
					Name:  "Old Name",
					Email: "admin@bnyu.app",
				}, nil)
				mRepo.On("UpdateName", mock.Anything, adminID, "New Name").Return(nil)
				mSessions.On("Put", mock.Anything, "session-1", auth.Identity{
					AdminID: adminID.String(),
					Name:    "New Name",
					Email:   "admin@bnyu.app",
				}, auth.SessionExpiry).Return(nil)
			},
		},
		{
			name: "unknown email",
			setupMock: func(mRepo *MockAdminRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@bnyu.app").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrAdminNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockSessions)
			identity, err := service.UpdateProfile(context.Background(), "session-1", "admin@bnyu.app", "New Name")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, identity)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "New Name", identity.Name)
				assert.Equal(t, "admin@bnyu.app", identity.Email)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}
