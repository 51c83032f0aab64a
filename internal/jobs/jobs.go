package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/sykli/college-backend/internal/app/repositories"
	"github.com/sykli/college-backend/internal/app/services"
	"github.com/sykli/college-backend/internal/config"
	"github.com/sykli/college-backend/internal/pkg/helpers"
)

// How many incomplete intents one sweep run picks up at most
const reconciliationBatchSize = 100

const jobTimeout = 5 * time.Minute

// Scheduler runs the background jobs: the enrollment reconciliation sweep
// and refresh token cleanup
type Scheduler struct {
	cron              *cron.Cron
	enrollmentService *services.EnrollmentService
	tokenRepo         *repositories.TokenRepository
	gracePeriod       time.Duration
	logger            zerolog.Logger
}

// NewScheduler creates a scheduler with all jobs registered
func NewScheduler(
	enrollmentService *services.EnrollmentService,
	tokenRepo *repositories.TokenRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) *Scheduler {
	s := &Scheduler{
		cron:              cron.New(cron.WithLocation(time.UTC)),
		enrollmentService: enrollmentService,
		tokenRepo:         tokenRepo,
		gracePeriod:       helpers.ParseDuration(cfg.Jobs.ReconciliationGracePeriod, 5*time.Minute),
		logger:            logger,
	}

	if _, err := s.cron.AddFunc(cfg.Jobs.ReconciliationSchedule, s.runReconciliation); err != nil {
		logger.Error().Err(err).Str("schedule", cfg.Jobs.ReconciliationSchedule).Msg("Failed to register reconciliation job")
	}

	if _, err := s.cron.AddFunc("@daily", s.cleanupExpiredTokens); err != nil {
		logger.Error().Err(err).Msg("Failed to register token cleanup job")
	}

	return s
}

// Start launches the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("Job scheduler started")
}

// Stop halts the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Job scheduler stopped")
}

// runReconciliation replays enrollment runs whose follow-up writes failed
func (s *Scheduler) runReconciliation() {
	defer s.recoverPanic("reconciliation")

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	repaired, err := s.enrollmentService.ReconcileIncomplete(ctx, s.gracePeriod, reconciliationBatchSize)
	if err != nil {
		s.logger.Error().Err(err).Msg("Enrollment reconciliation sweep failed")
		return
	}

	if repaired > 0 {
		s.logger.Info().Int("repaired", repaired).Msg("Enrollment reconciliation sweep repaired intents")
	}
}

// cleanupExpiredTokens removes expired refresh tokens
func (s *Scheduler) cleanupExpiredTokens() {
	defer s.recoverPanic("token cleanup")

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	deleted, err := s.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Refresh token cleanup failed")
		return
	}

	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("Expired refresh tokens removed")
	}
}

func (s *Scheduler) recoverPanic(job string) {
	if r := recover(); r != nil {
		s.logger.Error().Interface("panic", r).Str("job", job).Msg("Scheduled job panicked")
	}
}
