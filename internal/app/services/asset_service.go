package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/repositories"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
	"github.com/sykli/college-backend/internal/pkg/filestorage"
)

// AssetService handles the IT asset register
type AssetService struct {
	assetRepo   *repositories.AssetRepository
	profileRepo *repositories.ProfileRepository
	storage     filestorage.FileStorage
	logger      zerolog.Logger
}

// NewAssetService creates a new AssetService
func NewAssetService(
	assetRepo *repositories.AssetRepository,
	profileRepo *repositories.ProfileRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *AssetService {
	return &AssetService{
		assetRepo:   assetRepo,
		profileRepo: profileRepo,
		storage:     storage,
		logger:      logger,
	}
}

// Create registers a new asset in stock
func (s *AssetService) Create(ctx context.Context, asset *models.Asset) error {
	if asset.Status == "" {
		asset.Status = models.AssetInStock
	}
	return s.assetRepo.Create(ctx, asset)
}

// GetByID retrieves an asset by ID
func (s *AssetService) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

// GetAll lists assets, optionally filtered by status or category
func (s *AssetService) GetAll(ctx context.Context, status *models.AssetStatus, category *string) ([]*models.Asset, error) {
	return s.assetRepo.GetAll(ctx, status, category)
}

// Update updates asset metadata and status
func (s *AssetService) Update(ctx context.Context, asset *models.Asset) error {
	return s.assetRepo.Update(ctx, asset)
}

// Assign hands an asset to a profile. Retired assets cannot be assigned.
func (s *AssetService) Assign(ctx context.Context, assetID, profileID int64) error {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if asset.Status == models.AssetRetired {
		return apperrors.ErrAssetNotAssignable
	}

	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return err
	}

	if err := s.assetRepo.Assign(ctx, assetID, profileID); err != nil {
		return err
	}

	s.logger.Info().Int64("assetID", assetID).Int64("profileID", profileID).Msg("Asset assigned")
	return nil
}

// Unassign returns an asset to stock
func (s *AssetService) Unassign(ctx context.Context, assetID int64) error {
	return s.assetRepo.Unassign(ctx, assetID)
}

// UploadPhoto stores an asset photo and records its URL
func (s *AssetService) UploadPhoto(ctx context.Context, assetID int64, file *multipart.FileHeader) (string, error) {
	if _, err := s.assetRepo.GetByID(ctx, assetID); err != nil {
		return "", err
	}

	photoURL, err := s.storage.SaveFile(file, "assets")
	if err != nil {
		return "", err
	}

	if err := s.assetRepo.SetPhotoURL(ctx, assetID, photoURL); err != nil {
		// The row update failed, the stored file is orphaned
		if delErr := s.storage.DeleteFile(photoURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("photoURL", photoURL).Msg("Failed to remove orphaned asset photo")
		}
		return "", err
	}

	return photoURL, nil
}

// Delete removes an asset and its stored photo
func (s *AssetService) Delete(ctx context.Context, id int64) error {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.assetRepo.Delete(ctx, id); err != nil {
		return err
	}

	if asset.PhotoURL != nil {
		if err := s.storage.DeleteFile(*asset.PhotoURL); err != nil {
			s.logger.Warn().Err(err).Int64("assetID", id).Msg("Failed to delete asset photo")
		}
	}

	return nil
}
