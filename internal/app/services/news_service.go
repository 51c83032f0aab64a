package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/repositories"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
	"github.com/sykli/college-backend/internal/pkg/filestorage"
)

// NewsService handles news posts and events
type NewsService struct {
	newsRepo *repositories.NewsRepository
	storage  filestorage.FileStorage
	logger   zerolog.Logger
}

// NewNewsService creates a new NewsService
func NewNewsService(newsRepo *repositories.NewsRepository, storage filestorage.FileStorage, logger zerolog.Logger) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
		storage:  storage,
		logger:   logger,
	}
}

// Create publishes a news post or event. Events must carry an event date.
func (s *NewsService) Create(ctx context.Context, item *models.NewsItem) error {
	if item.Kind == models.KindEvent && item.EventDate == nil {
		return fmt.Errorf("%w: events require an event date", apperrors.ErrValidationFailed)
	}
	return s.newsRepo.Create(ctx, item)
}

// GetByID retrieves a news item by ID
func (s *NewsService) GetByID(ctx context.Context, id int64) (*models.NewsItem, error) {
	return s.newsRepo.GetByID(ctx, id)
}

// GetAll lists news items, optionally filtered by kind
func (s *NewsService) GetAll(ctx context.Context, kind *models.NewsKind) ([]*models.NewsItem, error) {
	return s.newsRepo.GetAll(ctx, kind)
}

// Update edits a news item
func (s *NewsService) Update(ctx context.Context, item *models.NewsItem) error {
	return s.newsRepo.Update(ctx, item)
}

// UploadCover stores a cover image and records its URL
func (s *NewsService) UploadCover(ctx context.Context, id int64, file *multipart.FileHeader) (string, error) {
	if _, err := s.newsRepo.GetByID(ctx, id); err != nil {
		return "", err
	}

	coverURL, err := s.storage.SaveFile(file, "news")
	if err != nil {
		return "", err
	}

	if err := s.newsRepo.SetCoverURL(ctx, id, coverURL); err != nil {
		if delErr := s.storage.DeleteFile(coverURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("coverURL", coverURL).Msg("Failed to remove orphaned news cover")
		}
		return "", err
	}

	return coverURL, nil
}

// Delete removes a news item and its stored cover image
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	item, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return err
	}

	if item.CoverURL != nil {
		if err := s.storage.DeleteFile(*item.CoverURL); err != nil {
			s.logger.Warn().Err(err).Int64("newsID", id).Msg("Failed to delete news cover")
		}
	}

	return nil
}
