package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/models/dto"
	"github.com/sykli/college-backend/internal/app/repositories"
	"github.com/sykli/college-backend/internal/config"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
	"github.com/sykli/college-backend/internal/pkg/email"
)

// Names of the follow-up steps recorded on a PARTIAL intent
const (
	stepApplicationStatus = "application_status"
	stepProfileRole       = "profile_role"
)

// maxNumberAttempts bounds how often a colliding student number is
// regenerated before enrollment gives up
const maxNumberAttempts = 3

// applicationStore is the slice of ApplicationRepository enrollment needs
type applicationStore interface {
	GetWithRelations(ctx context.Context, id int64) (*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
}

// studentStore is the slice of StudentRepository enrollment needs
type studentStore interface {
	UpsertByApplication(ctx context.Context, student *models.Student) error
	GetByApplicationID(ctx context.Context, applicationID int64) (*models.Student, error)
}

// profileStore is the slice of ProfileRepository enrollment needs
type profileStore interface {
	PromoteToStudent(ctx context.Context, profileID int64, studentNumber string) error
}

// intentStore is the slice of EnrollmentIntentRepository enrollment needs
type intentStore interface {
	Create(ctx context.Context, intent *models.EnrollmentIntent) error
	SetState(ctx context.Context, id string, state models.IntentState, failedSteps []string) error
	ListIncomplete(ctx context.Context, cutoff time.Time, limit int) ([]*models.EnrollmentIntent, error)
}

// EnrollmentService turns an accepted, paid application into a student
// record. The workflow is deliberately not transactional: the student row is
// the one write that must land, the application status update and the profile
// role promotion are follow-ups that a later run or the reconciliation sweep
// can repair. Every run against the same application converges on the same
// student row.
type EnrollmentService struct {
	applicationRepo applicationStore
	studentRepo     studentStore
	profileRepo     profileStore
	intentRepo      intentStore
	emailService    email.EmailService
	logger          zerolog.Logger

	institutionCode string
	emailDomain     string
	programYears    int

	// generateNumber produces the numeric part of a student number,
	// overridable in tests
	generateNumber func() int
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	applicationRepo *repositories.ApplicationRepository,
	studentRepo *repositories.StudentRepository,
	profileRepo *repositories.ProfileRepository,
	intentRepo *repositories.EnrollmentIntentRepository,
	emailService email.EmailService,
	cfg *config.Config,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		applicationRepo: applicationRepo,
		studentRepo:     studentRepo,
		profileRepo:     profileRepo,
		intentRepo:      intentRepo,
		emailService:    emailService,
		logger:          logger,
		institutionCode: cfg.Institution.Code,
		emailDomain:     cfg.Institution.EmailDomain,
		programYears:    cfg.Institution.ProgramLengthYears,
		generateNumber:  func() int { return rand.Intn(9000) + 1000 },
	}
}

// StudentNumber builds an identifier like SYK-2025-1042
func (s *EnrollmentService) StudentNumber() string {
	return fmt.Sprintf("%s-%d-%04d", s.institutionCode, time.Now().Year(), s.generateNumber())
}

// InstitutionalEmail derives the student mailbox address from the profile
// name, e.g. ada.lovelace@syklicollege.fi
func (s *EnrollmentService) InstitutionalEmail(firstName, lastName string) string {
	normalize := func(name string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
	}
	return fmt.Sprintf("%s.%s@%s", normalize(firstName), normalize(lastName), s.emailDomain)
}

// Enroll runs the enrollment workflow for an application. A missing
// application halts the run before any write. Once the student row exists
// the run reports success even when the follow-up writes fail; those are
// recorded on the intent and replayed by the reconciliation sweep.
func (s *EnrollmentService) Enroll(ctx context.Context, applicationID int64) (*dto.EnrollmentResponse, error) {
	application, err := s.applicationRepo.GetWithRelations(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error fetching application: %w", err)
	}

	studentNumber := s.StudentNumber()
	institutionalEmail := s.InstitutionalEmail(application.Profile.FirstName, application.Profile.LastName)

	intent := &models.EnrollmentIntent{
		ID:            uuid.New().String(),
		ApplicationID: application.ID,
		StudentNumber: studentNumber,
		State:         models.IntentPending,
	}
	if err := s.intentRepo.Create(ctx, intent); err != nil {
		// The intent only feeds the reconciliation sweep, the run proceeds
		s.logger.Warn().Err(err).Int64("applicationID", application.ID).Msg("Failed to record enrollment intent")
		intent.ID = ""
	}

	student, err := s.upsertStudent(ctx, application, studentNumber, institutionalEmail)
	if err != nil {
		return nil, err
	}

	// The upsert keeps the number of an already enrolled student, follow-up
	// writes and the response must carry the stored value
	studentNumber = student.StudentNumber

	var failedSteps []string

	if err := s.applicationRepo.UpdateStatus(ctx, application.ID, models.ApplicationEnrolled); err != nil {
		s.logger.Error().Err(err).Int64("applicationID", application.ID).Msg("Failed to mark application as enrolled")
		failedSteps = append(failedSteps, stepApplicationStatus)
	}

	if err := s.profileRepo.PromoteToStudent(ctx, application.ProfileID, studentNumber); err != nil {
		s.logger.Error().Err(err).Int64("profileID", application.ProfileID).Msg("Failed to promote profile to student")
		failedSteps = append(failedSteps, stepProfileRole)
	}

	s.settleIntent(ctx, intent.ID, failedSteps)

	if err := s.emailService.SendWelcomeEmail(
		application.Profile.Email,
		application.Profile.FullName(),
		studentNumber,
		student.InstitutionalEmail,
	); err != nil {
		s.logger.Warn().Err(err).Str("email", application.Profile.Email).Msg("Welcome email failed")
	}

	return &dto.EnrollmentResponse{
		StudentNumber:      studentNumber,
		InstitutionalEmail: student.InstitutionalEmail,
	}, nil
}

// upsertStudent writes the student row, regenerating the student number on a
// uniqueness collision up to maxNumberAttempts times
func (s *EnrollmentService) upsertStudent(ctx context.Context, application *models.Application, studentNumber, institutionalEmail string) (*models.Student, error) {
	startDate := time.Now()
	years := application.Course.DurationYears
	if years <= 0 {
		years = s.programYears
	}

	student := &models.Student{
		ProfileID:          application.ProfileID,
		ApplicationID:      application.ID,
		CourseID:           application.CourseID,
		StudentNumber:      studentNumber,
		InstitutionalEmail: institutionalEmail,
		PersonalEmail:      application.Profile.Email,
		EnrollmentStatus:   models.EnrollmentActive,
		StartDate:          startDate,
		ExpectedGraduation: startDate.AddDate(years, 0, 0),
	}

	for attempt := 1; ; attempt++ {
		err := s.studentRepo.UpsertByApplication(ctx, student)
		if err == nil {
			return student, nil
		}

		if errors.Is(err, repositories.ErrStudentNumberTaken) {
			if attempt >= maxNumberAttempts {
				s.logger.Error().Int64("applicationID", application.ID).Int("attempts", attempt).Msg("Student number generation exhausted")
				return nil, apperrors.ErrStudentNumberExhausted
			}
			student.StudentNumber = s.StudentNumber()
			continue
		}

		if errors.Is(err, apperrors.ErrInstitutionalEmailExists) {
			return nil, apperrors.ErrInstitutionalEmailExists
		}

		return nil, fmt.Errorf("%w: %w", apperrors.ErrStudentRecordFailed, err)
	}
}

// settleIntent marks an intent COMPLETE or PARTIAL depending on which
// follow-up writes failed
func (s *EnrollmentService) settleIntent(ctx context.Context, intentID string, failedSteps []string) {
	if intentID == "" {
		return
	}

	state := models.IntentComplete
	if len(failedSteps) > 0 {
		state = models.IntentPartial
	}

	if err := s.intentRepo.SetState(ctx, intentID, state, failedSteps); err != nil {
		s.logger.Warn().Err(err).Str("intentID", intentID).Msg("Failed to settle enrollment intent")
	}
}

// Reconcile replays the writes an earlier enrollment run left behind. The
// sweep calls it for every incomplete intent older than the grace period.
func (s *EnrollmentService) Reconcile(ctx context.Context, intent *models.EnrollmentIntent) error {
	application, err := s.applicationRepo.GetWithRelations(ctx, intent.ApplicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			// Nothing left to repair, retire the intent
			s.logger.Warn().Str("intentID", intent.ID).Int64("applicationID", intent.ApplicationID).Msg("Intent references a missing application")
			return s.intentRepo.SetState(ctx, intent.ID, models.IntentComplete, []string{"application_missing"})
		}
		return fmt.Errorf("error fetching application for reconciliation: %w", err)
	}

	student, err := s.studentRepo.GetByApplicationID(ctx, intent.ApplicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return fmt.Errorf("error fetching student for reconciliation: %w", err)
		}
		// The original run died before the student write landed
		institutionalEmail := s.InstitutionalEmail(application.Profile.FirstName, application.Profile.LastName)
		student, err = s.upsertStudent(ctx, application, intent.StudentNumber, institutionalEmail)
		if err != nil {
			return fmt.Errorf("error replaying student upsert: %w", err)
		}
	}

	var failedSteps []string

	if application.Status != models.ApplicationEnrolled {
		if err := s.applicationRepo.UpdateStatus(ctx, application.ID, models.ApplicationEnrolled); err != nil {
			s.logger.Error().Err(err).Int64("applicationID", application.ID).Msg("Reconciliation failed to mark application as enrolled")
			failedSteps = append(failedSteps, stepApplicationStatus)
		}
	}

	if application.Profile.RoleType != models.RoleStudent || application.Profile.StudentNumber == nil {
		if err := s.profileRepo.PromoteToStudent(ctx, application.ProfileID, student.StudentNumber); err != nil {
			s.logger.Error().Err(err).Int64("profileID", application.ProfileID).Msg("Reconciliation failed to promote profile")
			failedSteps = append(failedSteps, stepProfileRole)
		}
	}

	state := models.IntentComplete
	if len(failedSteps) > 0 {
		state = models.IntentPartial
	}
	return s.intentRepo.SetState(ctx, intent.ID, state, failedSteps)
}

// ReconcileIncomplete sweeps all incomplete intents last touched before the
// cutoff. It keeps going past per-intent failures and returns how many
// intents it repaired.
func (s *EnrollmentService) ReconcileIncomplete(ctx context.Context, gracePeriod time.Duration, limit int) (int, error) {
	cutoff := time.Now().Add(-gracePeriod)
	intents, err := s.intentRepo.ListIncomplete(ctx, cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("error listing incomplete intents: %w", err)
	}

	repaired := 0
	for _, intent := range intents {
		if err := s.Reconcile(ctx, intent); err != nil {
			s.logger.Error().Err(err).Str("intentID", intent.ID).Msg("Failed to reconcile enrollment intent")
			continue
		}
		repaired++
	}

	return repaired, nil
}
