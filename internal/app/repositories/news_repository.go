package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
)

// NewsRepository handles database operations for news posts and events
type NewsRepository struct {
	db *pgxpool.Pool
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create publishes a news item
func (r *NewsRepository) Create(ctx context.Context, item *models.NewsItem) error {
	query := `
		INSERT INTO news (kind, title, body, event_date, published_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, published_at, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, item.Kind, item.Title, item.Body, item.EventDate).
		Scan(&item.ID, &item.PublishedAt, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating news item: %w", err)
	}

	return nil
}

// GetByID retrieves a news item by ID
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.NewsItem, error) {
	query := `
		SELECT id, kind, title, body, cover_url, published_at, event_date, created_at, updated_at
		FROM news
		WHERE id = $1
	`

	var item models.NewsItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Kind, &item.Title, &item.Body, &item.CoverURL,
		&item.PublishedAt, &item.EventDate, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsItemNotFound
		}
		return nil, fmt.Errorf("error retrieving news item: %w", err)
	}

	return &item, nil
}

// GetAll retrieves news items newest first, optionally filtered by kind
func (r *NewsRepository) GetAll(ctx context.Context, kind *models.NewsKind) ([]*models.NewsItem, error) {
	query := `
		SELECT id, kind, title, body, cover_url, published_at, event_date, created_at, updated_at
		FROM news
	`
	var args []interface{}
	if kind != nil {
		query += ` WHERE kind = $1`
		args = append(args, *kind)
	}
	query += ` ORDER BY published_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.NewsItem
	for rows.Next() {
		var item models.NewsItem
		if err := rows.Scan(
			&item.ID, &item.Kind, &item.Title, &item.Body, &item.CoverURL,
			&item.PublishedAt, &item.EventDate, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Update edits a news item
func (r *NewsRepository) Update(ctx context.Context, item *models.NewsItem) error {
	query := `
		UPDATE news
		SET title = $1, body = $2, event_date = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, item.Title, item.Body, item.EventDate, item.ID)
	if err != nil {
		return fmt.Errorf("error updating news item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNewsItemNotFound
	}

	return nil
}

// SetCoverURL stores the URL of an uploaded cover image
func (r *NewsRepository) SetCoverURL(ctx context.Context, id int64, coverURL string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE news SET cover_url = $1, updated_at = NOW() WHERE id = $2
	`, coverURL, id)
	if err != nil {
		return fmt.Errorf("error setting news cover: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNewsItemNotFound
	}

	return nil
}

// Delete removes a news item
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting news item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNewsItemNotFound
	}

	return nil
}
