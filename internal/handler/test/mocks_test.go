package test

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"github.com/tmohagan/portfolio-api/internal/config"
	handlers "github.com/tmohagan/portfolio-api/internal/handler"
	"github.com/tmohagan/portfolio-api/internal/models"
	"github.com/tmohagan/portfolio-api/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, confirmPassword string) (*models.User, error) {
	args := m.Called(ctx, username, password, confirmPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionClaims), args.Error(1)
}

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

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, authorID string, fields service.ContentFields, upload *service.Upload) (*models.ContentItem, error) {
	args := m.Called(ctx, authorID, fields, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentItem), args.Error(1)
}

func (m *MockContentService) Update(ctx context.Context, itemID string, claims *models.SessionClaims, fields service.ContentFields, upload *service.Upload) (*models.ContentItem, error) {
	args := m.Called(ctx, itemID, claims, fields, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentItem), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, itemID string, claims *models.SessionClaims) error {
	args := m.Called(ctx, itemID, claims)
	return args.Error(0)
}

func (m *MockContentService) Get(ctx context.Context, itemID string) (*models.ContentItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentItem), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context) ([]models.ContentItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContentItem), args.Error(1)
}

type MockMailService struct {
	mock.Mock
}

func (m *MockMailService) SendContact(ctx context.Context, name, email, message string) error {
	args := m.Called(ctx, name, email, message)
	return args.Error(0)
}

type testDeps struct {
	auth    *MockAuthService
	user    *MockUserRepository
	post    *MockContentService
	project *MockContentService
	mail    *MockMailService
}

func newTestHandlers() (*handlers.Handlers, *testDeps) {
	deps := &testDeps{
		auth:    new(MockAuthService),
		user:    new(MockUserRepository),
		post:    new(MockContentService),
		project: new(MockContentService),
		mail:    new(MockMailService),
	}

	h := &handlers.Handlers{
		AuthService:    deps.auth,
		UserRepo:       deps.user,
		PostService:    deps.post,
		ProjectService: deps.project,
		MailService:    deps.mail,
		Cfg: &config.Config{
			TokenDuration: 24 * time.Hour,
			MaxUploadSize: 10 * 1024 * 1024,
		},
		Validate: validator.New(),
	}

	return h, deps
}
