package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
	"github.com/sykli/college-backend/internal/pkg/dberrors"
)

// AssetRepository handles database operations for IT assets
type AssetRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const assetColumns = "id, tag, name, category, status, assigned_profile_id, photo_url, purchased_at, created_at, updated_at"

func scanAsset(row pgx.Row) (*models.Asset, error) {
	var a models.Asset
	err := row.Scan(
		&a.ID, &a.Tag, &a.Name, &a.Category, &a.Status,
		&a.AssignedProfileID, &a.PhotoURL, &a.PurchasedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create registers a new asset
func (r *AssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	sql, args, err := r.sb.Insert("assets").
		Columns("tag", "name", "category", "status", "purchased_at").
		Values(asset.Tag, asset.Name, asset.Category, asset.Status, asset.PurchasedAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create asset query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "assets_tag_key") {
			return apperrors.ErrAssetTagExists
		}
		return fmt.Errorf("error creating asset: %w", err)
	}

	return nil
}

// GetByID retrieves an asset by ID
func (r *AssetRepository) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	sql, args, err := r.sb.Select(assetColumns).
		From("assets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get asset query: %w", err)
	}

	asset, err := scanAsset(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("error retrieving asset: %w", err)
	}

	return asset, nil
}

// GetAll retrieves assets, optionally filtered by status or category
func (r *AssetRepository) GetAll(ctx context.Context, status *models.AssetStatus, category *string) ([]*models.Asset, error) {
	builder := r.sb.Select(assetColumns).
		From("assets").
		OrderBy("tag")
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}
	if category != nil {
		builder = builder.Where(squirrel.Eq{"category": *category})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assets query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

// Update updates asset metadata and status
func (r *AssetRepository) Update(ctx context.Context, asset *models.Asset) error {
	sql, args, err := r.sb.Update("assets").
		Set("name", asset.Name).
		Set("category", asset.Category).
		Set("status", asset.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": asset.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update asset query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// Assign attaches an asset to a profile and marks it ASSIGNED
func (r *AssetRepository) Assign(ctx context.Context, assetID, profileID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE assets
		SET assigned_profile_id = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`, profileID, models.AssetAssigned, assetID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("error assigning asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// Unassign detaches an asset from its profile and returns it to stock
func (r *AssetRepository) Unassign(ctx context.Context, assetID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE assets
		SET assigned_profile_id = NULL, status = $1, updated_at = NOW()
		WHERE id = $2
	`, models.AssetInStock, assetID)
	if err != nil {
		return fmt.Errorf("error unassigning asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// SetPhotoURL stores the URL of an uploaded asset photo
func (r *AssetRepository) SetPhotoURL(ctx context.Context, assetID int64, photoURL string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE assets SET photo_url = $1, updated_at = NOW() WHERE id = $2
	`, photoURL, assetID)
	if err != nil {
		return fmt.Errorf("error setting asset photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// Delete removes an asset
func (r *AssetRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}
