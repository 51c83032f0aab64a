package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
)

// EnrollmentIntentRepository persists the compensating-action log of the
// enrollment workflow
type EnrollmentIntentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentIntentRepository creates a new EnrollmentIntentRepository
func NewEnrollmentIntentRepository(db *pgxpool.Pool) *EnrollmentIntentRepository {
	return &EnrollmentIntentRepository{db: db}
}

// Create records a new intent in PENDING state
func (r *EnrollmentIntentRepository) Create(ctx context.Context, intent *models.EnrollmentIntent) error {
	query := `
		INSERT INTO enrollment_intents (id, application_id, student_number, state, failed_steps)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		intent.ID, intent.ApplicationID, intent.StudentNumber, intent.State, intent.FailedSteps,
	).Scan(&intent.CreatedAt, &intent.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating enrollment intent: %w", err)
	}

	return nil
}

// SetState updates the state and failed-step notes of an intent
func (r *EnrollmentIntentRepository) SetState(ctx context.Context, id string, state models.IntentState, failedSteps []string) error {
	query := `
		UPDATE enrollment_intents
		SET state = $1, failed_steps = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, state, failedSteps, id)
	if err != nil {
		return fmt.Errorf("error updating enrollment intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// ListIncomplete returns intents that are not COMPLETE and were last touched
// before the cutoff. The reconciliation sweep replays these.
func (r *EnrollmentIntentRepository) ListIncomplete(ctx context.Context, cutoff time.Time, limit int) ([]*models.EnrollmentIntent, error) {
	query := `
		SELECT id, application_id, student_number, state, failed_steps, created_at, updated_at
		FROM enrollment_intents
		WHERE state <> $1 AND updated_at < $2
		ORDER BY updated_at
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, models.IntentComplete, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intents []*models.EnrollmentIntent
	for rows.Next() {
		var intent models.EnrollmentIntent
		if err := rows.Scan(
			&intent.ID, &intent.ApplicationID, &intent.StudentNumber,
			&intent.State, &intent.FailedSteps, &intent.CreatedAt, &intent.UpdatedAt,
		); err != nil {
			return nil, err
		}
		intents = append(intents, &intent)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return intents, nil
}
