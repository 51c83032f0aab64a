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

// ApplicationRepository handles database operations for admissions applications
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new application in SUBMITTED state
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	sql, args, err := r.sb.Insert("applications").
		Columns("profile_id", "course_id", "status", "motivation").
		Values(application.ProfileID, application.CourseID, application.Status, application.Motivation).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_profile_id_course_id_key") {
			return apperrors.ErrApplicationAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID without relations
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select("id", "profile_id", "course_id", "status", "motivation", "created_at", "updated_at").
		From("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	var a models.Application
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&a.ID, &a.ProfileID, &a.CourseID, &a.Status, &a.Motivation, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &a, nil
}

// GetWithRelations retrieves an application joined with its profile and course.
// This is the fetch step of the enrollment workflow: everything the workflow
// derives (names, personal email, programme) comes from this one read.
func (r *ApplicationRepository) GetWithRelations(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT a.id, a.profile_id, a.course_id, a.status, a.motivation, a.created_at, a.updated_at,
		       p.id, p.email, p.first_name, p.last_name, p.role_type, p.student_number, p.is_active,
		       c.id, c.department_id, c.name, c.code, c.duration_years
		FROM applications a
		JOIN profiles p ON p.id = a.profile_id
		JOIN courses c ON c.id = a.course_id
		WHERE a.id = $1
	`

	var a models.Application
	var p models.Profile
	var c models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.ProfileID, &a.CourseID, &a.Status, &a.Motivation, &a.CreatedAt, &a.UpdatedAt,
		&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.RoleType, &p.StudentNumber, &p.IsActive,
		&c.ID, &c.DepartmentID, &c.Name, &c.Code, &c.DurationYears,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application with relations: %w", err)
	}

	a.Profile = &p
	a.Course = &c
	return &a, nil
}

// GetByProfileID retrieves all applications submitted by a profile
func (r *ApplicationRepository) GetByProfileID(ctx context.Context, profileID int64) ([]*models.Application, error) {
	sql, args, err := r.sb.Select("id", "profile_id", "course_id", "status", "motivation", "created_at", "updated_at").
		From("applications").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	return r.queryList(ctx, sql, args...)
}

// GetAll retrieves applications, optionally filtered by status
func (r *ApplicationRepository) GetAll(ctx context.Context, status *models.ApplicationStatus) ([]*models.Application, error) {
	builder := r.sb.Select("id", "profile_id", "course_id", "status", "motivation", "created_at", "updated_at").
		From("applications").
		OrderBy("created_at DESC")
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	return r.queryList(ctx, sql, args...)
}

func (r *ApplicationRepository) queryList(ctx context.Context, sql string, args ...interface{}) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(
			&a.ID, &a.ProfileID, &a.CourseID, &a.Status, &a.Motivation, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateStatus sets the status of an application.
// Returns apperrors.ErrApplicationNotFound when no row matched.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	sql, args, err := r.sb.Update("applications").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update application status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		logger.Warn().Int64("applicationID", id).Str("status", string(status)).Msg("Application status update matched no rows")
		return apperrors.ErrApplicationNotFound
	}

	return nil
}
