package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tmohagan/portfolio-api/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateName(ctx context.Context, userID, name string) error
}

// ContentRepository is the shared persistence contract for posts and projects.
type ContentRepository interface {
	Create(ctx context.Context, item *models.ContentItem) error
	GetByID(ctx context.Context, itemID string) (*models.ContentItem, error)
	List(ctx context.Context) ([]models.ContentItem, error)
	Update(ctx context.Context, item *models.ContentItem) error
	Delete(ctx context.Context, itemID string) error
}

type Repository struct {
	User    UserRepository
	Post    ContentRepository
	Project ContentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewContentRepository(db, "posts"),
		Project: NewContentRepository(db, "projects"),
	}
}
