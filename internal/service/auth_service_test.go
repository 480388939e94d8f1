package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tmohagan/portfolio-api/internal/apperrors"
	"github.com/tmohagan/portfolio-api/internal/config"
	"github.com/tmohagan/portfolio-api/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, userID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:  "test-secret",
		TokenDuration: 24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("password mismatch is a validation failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testConfig())

		_, err := svc.Register(ctx, "alice", "secret123", "secret124")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("creates user when passwords match", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testConfig())

		repo.On("CreateUser", mock.Anything, mock.Anything, "secret123").Return(nil)

		user, err := svc.Register(ctx, "alice", "secret123", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username passes conflict through", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testConfig())

		repo.On("CreateUser", mock.Anything, mock.Anything, "secret123").
			Return(apperrors.ErrConflict)

		_, err := svc.Register(ctx, "alice", "secret123", "secret123")

		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &models.User{UserID: "user-1", Username: "alice"}

	t.Run("issues a verifiable token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testConfig())

		repo.On("VerifyPassword", mock.Anything, "alice", "secret123").Return(user, nil)

		gotUser, token, err := svc.Login(ctx, "alice", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "user-1", gotUser.UserID)

		claims, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("tokens are distinct per login", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testConfig())

		repo.On("VerifyPassword", mock.Anything, "alice", "secret123").Return(user, nil)

		_, first, err := svc.Login(ctx, "alice", "secret123")
		require.NoError(t, err)
		_, second, err := svc.Login(ctx, "alice", "secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("wrong credentials pass through unchanged", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testConfig())

		repo.On("VerifyPassword", mock.Anything, "alice", "bad").
			Return(nil, apperrors.ErrWrongCredentials)

		_, _, err := svc.Login(ctx, "alice", "bad")

		assert.ErrorIs(t, err, apperrors.ErrWrongCredentials)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	ctx := context.Background()
	user := &models.User{UserID: "user-1", Username: "alice"}

	issue := func(t *testing.T, cfg *config.Config) string {
		t.Helper()
		repo := new(MockUserRepository)
		repo.On("VerifyPassword", mock.Anything, "alice", "secret123").Return(user, nil)
		_, token, err := NewAuthService(repo, cfg).Login(ctx, "alice", "secret123")
		require.NoError(t, err)
		return token
	}

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), testConfig())

		_, err := svc.VerifyToken("not-a-token")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTSecretKey = "other-secret"
		token := issue(t, otherCfg)

		svc := NewAuthService(new(MockUserRepository), testConfig())

		_, err := svc.VerifyToken(token)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCfg := testConfig()
		expiredCfg.TokenDuration = -time.Hour
		token := issue(t, expiredCfg)

		svc := NewAuthService(new(MockUserRepository), expiredCfg)

		_, err := svc.VerifyToken(token)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
