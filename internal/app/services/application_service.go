package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/models/dto"
	"github.com/sykli/college-backend/internal/app/repositories"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
)

// allowedTransitions maps an application status to the statuses an admin may
// move it to. ENROLLED is reachable only through the enrollment workflow.
var allowedTransitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.ApplicationSubmitted:        {models.ApplicationAccepted, models.ApplicationRejected},
	models.ApplicationAccepted:         {models.ApplicationPaymentSubmitted, models.ApplicationRejected},
	models.ApplicationPaymentSubmitted: {models.ApplicationRejected},
}

// ApplicationService handles the admissions pipeline up to enrollment
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	courseRepo      *repositories.CourseRepository
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	courseRepo *repositories.CourseRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		courseRepo:      courseRepo,
		logger:          logger,
	}
}

// Submit creates an application in SUBMITTED state for the given profile
func (s *ApplicationService) Submit(ctx context.Context, profileID int64, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	application := &models.Application{
		ProfileID:  profileID,
		CourseID:   req.CourseID,
		Status:     models.ApplicationSubmitted,
		Motivation: req.Motivation,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("applicationID", application.ID).Int64("profileID", profileID).Int64("courseID", req.CourseID).Msg("Application submitted")
	return application, nil
}

// GetByID retrieves an application with its profile and course
func (s *ApplicationService) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	return s.applicationRepo.GetWithRelations(ctx, id)
}

// GetByProfileID lists the applications a profile has submitted
func (s *ApplicationService) GetByProfileID(ctx context.Context, profileID int64) ([]*models.Application, error) {
	return s.applicationRepo.GetByProfileID(ctx, profileID)
}

// GetAll lists applications, optionally filtered by status
func (s *ApplicationService) GetAll(ctx context.Context, status *models.ApplicationStatus) ([]*models.Application, error) {
	return s.applicationRepo.GetAll(ctx, status)
}

// UpdateStatus moves an application through the admissions pipeline,
// rejecting transitions the pipeline does not allow
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(application.Status, status) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, application.Status, status)
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("applicationID", id).Str("from", string(application.Status)).Str("to", string(status)).Msg("Application status updated")

	application.Status = status
	return application, nil
}

func transitionAllowed(from, to models.ApplicationStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
