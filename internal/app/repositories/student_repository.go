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

// ErrStudentNumberTaken is returned when the generated student number hit the
// uniqueness constraint. The caller regenerates and retries.
var ErrStudentNumberTaken = errors.New("student number already in use")

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = "id, profile_id, application_id, course_id, student_number, institutional_email, personal_email, enrollment_status, start_date, expected_graduation, created_at, updated_at"

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.ProfileID, &s.ApplicationID, &s.CourseID, &s.StudentNumber,
		&s.InstitutionalEmail, &s.PersonalEmail, &s.EnrollmentStatus,
		&s.StartDate, &s.ExpectedGraduation, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertByApplication writes a student row keyed on application_id. If a row
// for the application already exists its fields are overwritten with the
// freshly computed values, so re-running enrollment never duplicates a
// student. The existing student number is kept on conflict so a re-run does
// not reissue identity.
func (r *StudentRepository) UpsertByApplication(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			profile_id, application_id, course_id, student_number,
			institutional_email, personal_email, enrollment_status,
			start_date, expected_graduation
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (application_id) DO UPDATE SET
			profile_id = EXCLUDED.profile_id,
			course_id = EXCLUDED.course_id,
			institutional_email = EXCLUDED.institutional_email,
			personal_email = EXCLUDED.personal_email,
			enrollment_status = EXCLUDED.enrollment_status,
			start_date = EXCLUDED.start_date,
			expected_graduation = EXCLUDED.expected_graduation,
			updated_at = NOW()
		RETURNING id, student_number, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.ProfileID, student.ApplicationID, student.CourseID, student.StudentNumber,
		student.InstitutionalEmail, student.PersonalEmail, student.EnrollmentStatus,
		student.StartDate, student.ExpectedGraduation,
	).Scan(&student.ID, &student.StudentNumber, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
			logger.Warn().Str("studentNumber", student.StudentNumber).Msg("Generated student number collided")
			return ErrStudentNumberTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "students_institutional_email_key") {
			logger.Warn().Str("institutionalEmail", student.InstitutionalEmail).Msg("Derived institutional email already in use")
			return apperrors.ErrInstitutionalEmailExists
		}
		return fmt.Errorf("error upserting student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByApplicationID retrieves the student created from an application
func (r *StudentRepository) GetByApplicationID(ctx context.Context, applicationID int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"application_id": applicationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by application query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by application: %w", err)
	}

	return student, nil
}

// GetByProfileID retrieves the student record owned by a profile
func (r *StudentRepository) GetByProfileID(ctx context.Context, profileID int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"profile_id": profileID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by profile query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by profile: %w", err)
	}

	return student, nil
}

// GetAll retrieves students, optionally filtered by enrollment status
func (r *StudentRepository) GetAll(ctx context.Context, status *models.EnrollmentStatus) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns).
		From("students").
		OrderBy("student_number")
	if status != nil {
		builder = builder.Where(squirrel.Eq{"enrollment_status": *status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// UpdateStatus changes a student's enrollment status
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error {
	sql, args, err := r.sb.Update("students").
		Set("enrollment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
