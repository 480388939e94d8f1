package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/tmohagan/portfolio-api/internal/apperrors"
	"github.com/tmohagan/portfolio-api/internal/models"
	"github.com/tmohagan/portfolio-api/internal/repository"
	"github.com/tmohagan/portfolio-api/internal/storage"
)

// ContentFields are the author-mutable fields of a content item.
type ContentFields struct {
	Title   string
	Summary string
	Content string
}

// Upload carries an optional cover file through from the multipart request.
type Upload struct {
	FileName string
	File     io.Reader
	Size     int64
}

// ContentService implements the lifecycle rules shared by posts and projects.
//
// Concurrent updates of the same item are last-write-wins, and a delete racing
// an update can leave an orphaned object in storage. There is no per-item
// locking; at this system's scale that gap is accepted.
type ContentService interface {
	Create(ctx context.Context, authorID string, fields ContentFields, upload *Upload) (*models.ContentItem, error)
	Update(ctx context.Context, itemID string, claims *models.SessionClaims, fields ContentFields, upload *Upload) (*models.ContentItem, error)
	Delete(ctx context.Context, itemID string, claims *models.SessionClaims) error
	Get(ctx context.Context, itemID string) (*models.ContentItem, error)
	List(ctx context.Context) ([]models.ContentItem, error)
}

// CanMutate is the ownership check gating every update and delete: only the
// user recorded as author at creation time may mutate an item.
func CanMutate(claims *models.SessionClaims, item *models.ContentItem) bool {
	return claims != nil && claims.UserID == item.AuthorID
}

type contentService struct {
	repo  repository.ContentRepository
	store storage.Storage
}

func NewContentService(repo repository.ContentRepository, store storage.Storage) ContentService {
	return &contentService{
		repo:  repo,
		store: store,
	}
}

// Create uploads the cover first, if one was supplied; the record is only
// written once the upload has completed.
func (s *contentService) Create(ctx context.Context, authorID string, fields ContentFields, upload *Upload) (*models.ContentItem, error) {
	var cover *string

	if upload != nil {
		_, url, err := s.store.Upload(ctx, upload.FileName, upload.File, upload.Size)
		if err != nil {
			return nil, fmt.Errorf("could not upload cover: %w", err)
		}
		cover = &url
	}

	item := &models.ContentItem{
		AuthorID: authorID,
		Title:    fields.Title,
		Summary:  fields.Summary,
		Content:  fields.Content,
		Cover:    cover,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Update verifies ownership before any upload happens, so a rejected update
// never leaves an orphaned object in storage. The cover is replaced only when
// a new upload was supplied, otherwise the existing one is retained.
func (s *contentService) Update(ctx context.Context, itemID string, claims *models.SessionClaims, fields ContentFields, upload *Upload) (*models.ContentItem, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !CanMutate(claims, item) {
		return nil, fmt.Errorf("user is not the author: %w", apperrors.ErrForbidden)
	}

	if upload != nil {
		_, url, err := s.store.Upload(ctx, upload.FileName, upload.File, upload.Size)
		if err != nil {
			return nil, fmt.Errorf("could not upload cover: %w", err)
		}
		item.Cover = &url
	}

	item.Title = fields.Title
	item.Summary = fields.Summary
	item.Content = fields.Content

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes the backing cover object best-effort before removing the
// record. Metadata and object storage share no transaction, so a failed
// object delete is logged and the record is removed anyway.
func (s *contentService) Delete(ctx context.Context, itemID string, claims *models.SessionClaims) error {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if !CanMutate(claims, item) {
		return fmt.Errorf("user is not the author: %w", apperrors.ErrForbidden)
	}

	if item.Cover != nil {
		objectName := storage.ObjectKeyFromURL(*item.Cover)
		if err := s.store.Delete(ctx, objectName); err != nil {
			log.Printf("Warning: could not delete cover object %s: %v", objectName, err)
		}
	}

	return s.repo.Delete(ctx, itemID)
}

func (s *contentService) Get(ctx context.Context, itemID string) (*models.ContentItem, error) {
	return s.repo.GetByID(ctx, itemID)
}

func (s *contentService) List(ctx context.Context) ([]models.ContentItem, error) {
	return s.repo.List(ctx)
}
