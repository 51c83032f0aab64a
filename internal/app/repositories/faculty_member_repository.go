package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
	"github.com/sykli/college-backend/internal/pkg/dberrors"
)

// FacultyMemberRepository handles database operations for teaching staff
type FacultyMemberRepository struct {
	db *pgxpool.Pool
}

// NewFacultyMemberRepository creates a new faculty member repository
func NewFacultyMemberRepository(db *pgxpool.Pool) *FacultyMemberRepository {
	return &FacultyMemberRepository{db: db}
}

// Create creates a new faculty member
func (r *FacultyMemberRepository) Create(ctx context.Context, member *models.FacultyMember) error {
	query := `
		INSERT INTO faculty_members (department_id, first_name, last_name, email, title)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		member.DepartmentID, member.FirstName, member.LastName, member.Email, member.Title,
	).Scan(&member.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating faculty member: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyMemberRepository) GetByID(ctx context.Context, id int64) (*models.FacultyMember, error) {
	query := `
		SELECT id, department_id, first_name, last_name, email, title
		FROM faculty_members
		WHERE id = $1
	`

	var member models.FacultyMember
	err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.DepartmentID, &member.FirstName,
		&member.LastName, &member.Email, &member.Title,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyMemberNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty member: %w", err)
	}

	return &member, nil
}

// GetAll retrieves all faculty members, optionally filtered by department
func (r *FacultyMemberRepository) GetAll(ctx context.Context, departmentID *int64) ([]*models.FacultyMember, error) {
	query := `
		SELECT id, department_id, first_name, last_name, email, title
		FROM faculty_members
	`
	var args []interface{}
	if departmentID != nil {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.FacultyMember
	for rows.Next() {
		var member models.FacultyMember
		if err := rows.Scan(
			&member.ID, &member.DepartmentID, &member.FirstName,
			&member.LastName, &member.Email, &member.Title,
		); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// Update updates an existing faculty member
func (r *FacultyMemberRepository) Update(ctx context.Context, member *models.FacultyMember) error {
	query := `
		UPDATE faculty_members
		SET department_id = $1, first_name = $2, last_name = $3, email = $4, title = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		member.DepartmentID, member.FirstName, member.LastName,
		member.Email, member.Title, member.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating faculty member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyMemberNotFound
	}

	return nil
}

// Delete deletes a faculty member by ID
func (r *FacultyMemberRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM faculty_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting faculty member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyMemberNotFound
	}

	return nil
}
