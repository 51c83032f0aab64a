package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/repositories"
)

// StudentService handles read and status operations on student records
type StudentService struct {
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetByID retrieves a student by ID
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetByProfileID retrieves the student record owned by a profile
func (s *StudentService) GetByProfileID(ctx context.Context, profileID int64) (*models.Student, error) {
	return s.studentRepo.GetByProfileID(ctx, profileID)
}

// GetAll lists students, optionally filtered by enrollment status
func (s *StudentService) GetAll(ctx context.Context, status *models.EnrollmentStatus) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx, status)
}

// UpdateStatus changes a student's academic standing
func (s *StudentService) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error {
	if err := s.studentRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.logger.Info().Int64("studentID", id).Str("status", string(status)).Msg("Student enrollment status updated")
	return nil
}
