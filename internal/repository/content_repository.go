package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tmohagan/portfolio-api/internal/apperrors"
	"github.com/tmohagan/portfolio-api/internal/models"
)

// listLimit caps List results; the surface exposes no pagination.
const listLimit = 20

// contentRepository serves both posts and projects; the two tables share one
// schema, so a single implementation is parameterized by table name. The name
// comes from compile-time constants in NewRepository, never from input.
type contentRepository struct {
	db    *sqlx.DB
	table string
}

func NewContentRepository(db *sqlx.DB, table string) ContentRepository {
	return &contentRepository{db: db, table: table}
}

func (r *contentRepository) Create(ctx context.Context, item *models.ContentItem) error {
	if item.ItemID == "" {
		item.ItemID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	query := fmt.Sprintf(`
		INSERT INTO %s (item_id, author_id, title, summary, content, cover, created_at)
		VALUES (:item_id, :author_id, :title, :summary, :content, :cover, :created_at)
	`, r.table)

	_, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("could not create %s item: %w", r.table, err)
	}

	return nil
}

func (r *contentRepository) GetByID(ctx context.Context, itemID string) (*models.ContentItem, error) {
	query := fmt.Sprintf(`
		SELECT c.item_id, c.author_id, c.title, c.summary, c.content, c.cover, c.created_at,
		       u.username AS author_username
		FROM %s c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.item_id = $1
	`, r.table)

	var item models.ContentItem
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s item %s: %w", r.table, itemID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get %s item: %w", r.table, err)
	}

	item.Author = &models.Author{UserID: item.AuthorID, Username: item.AuthorUsername}

	return &item, nil
}

func (r *contentRepository) List(ctx context.Context) ([]models.ContentItem, error) {
	query := fmt.Sprintf(`
		SELECT c.item_id, c.author_id, c.title, c.summary, c.content, c.cover, c.created_at,
		       u.username AS author_username
		FROM %s c
		JOIN users u ON u.user_id = c.author_id
		ORDER BY c.created_at DESC
		LIMIT %d
	`, r.table, listLimit)

	var items []models.ContentItem
	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, fmt.Errorf("could not list %s items: %w", r.table, err)
	}

	for i := range items {
		items[i].Author = &models.Author{UserID: items[i].AuthorID, Username: items[i].AuthorUsername}
	}

	return items, nil
}

// Update overwrites the mutable fields. author_id and created_at are never
// touched here; ownership is checked in the service layer before the call.
func (r *contentRepository) Update(ctx context.Context, item *models.ContentItem) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			title = :title,
			summary = :summary,
			content = :content,
			cover = :cover
		WHERE item_id = :item_id
	`, r.table)

	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("could not update %s item: %w", r.table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s item %s: %w", r.table, item.ItemID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *contentRepository) Delete(ctx context.Context, itemID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE item_id = $1`, r.table)

	result, err := r.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("could not delete %s item: %w", r.table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s item %s: %w", r.table, itemID, apperrors.ErrNotFound)
	}

	return nil
}
