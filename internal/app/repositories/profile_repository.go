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
	"github.com/sykli/college-backend/internal/pkg/logger"
)

// ProfileRepository handles profile (user identity) database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const profileColumns = "id, email, password, first_name, last_name, role_type, student_number, is_active, created_at, updated_at, last_login_at"

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.Password, &p.FirstName, &p.LastName,
		&p.RoleType, &p.StudentNumber, &p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new profile and sets its ID
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	sql, args, err := r.sb.Insert("profiles").
		Columns("email", "password", "first_name", "last_name", "role_type", "is_active").
		Values(profile.Email, profile.Password, profile.FirstName, profile.LastName, profile.RoleType, profile.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create profile query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_email_key") {
			logger.Warn().Str("email", profile.Email).Msg("Attempted to create profile with duplicate email")
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns).
		From("profiles").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile by email query: %w", err)
	}

	profile, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile by email: %w", err)
	}

	return profile, nil
}

// EmailExists checks whether a profile with the given email already exists
func (r *ProfileRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM profiles WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// PromoteToStudent sets role_type to STUDENT and attaches the student number.
// Returns apperrors.ErrProfileNotFound when the profile does not exist.
func (r *ProfileRepository) PromoteToStudent(ctx context.Context, profileID int64, studentNumber string) error {
	sql, args, err := r.sb.Update("profiles").
		Set("role_type", models.RoleStudent).
		Set("student_number", studentNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": profileID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build promote profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error promoting profile to student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// UpdateLastLogin records the time of a successful login
func (r *ProfileRepository) UpdateLastLogin(ctx context.Context, profileID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE profiles SET last_login_at = NOW() WHERE id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}
