package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/repositories"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
)

// ErrCatalogValidation wraps the validation sentinel so the API error
// mapper turns catalog input problems into 400 responses
var ErrCatalogValidation = fmt.Errorf("%w: catalog input invalid", apperrors.ErrValidationFailed)

// isValidCode checks that an organizational code is uppercase alphanumeric
func isValidCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}

// SchoolService handles school catalog operations
type SchoolService struct {
	schoolRepo *repositories.SchoolRepository
}

// NewSchoolService creates a new SchoolService
func NewSchoolService(schoolRepo *repositories.SchoolRepository) *SchoolService {
	return &SchoolService{schoolRepo: schoolRepo}
}

// Create creates a new school
func (s *SchoolService) Create(ctx context.Context, school *models.School) error {
	if strings.TrimSpace(school.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	if !isValidCode(school.Code) {
		return fmt.Errorf("%w: code must be uppercase alphanumeric", ErrCatalogValidation)
	}
	return s.schoolRepo.Create(ctx, school)
}

// GetByID retrieves a school by ID
func (s *SchoolService) GetByID(ctx context.Context, id int64) (*models.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

// GetAll lists all schools
func (s *SchoolService) GetAll(ctx context.Context) ([]*models.School, error) {
	return s.schoolRepo.GetAll(ctx)
}

// Update updates a school
func (s *SchoolService) Update(ctx context.Context, school *models.School) error {
	if strings.TrimSpace(school.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	if !isValidCode(school.Code) {
		return fmt.Errorf("%w: code must be uppercase alphanumeric", ErrCatalogValidation)
	}
	return s.schoolRepo.Update(ctx, school)
}

// Delete deletes a school
func (s *SchoolService) Delete(ctx context.Context, id int64) error {
	return s.schoolRepo.Delete(ctx, id)
}

// DepartmentService handles department catalog operations
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
	schoolRepo     *repositories.SchoolRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository, schoolRepo *repositories.SchoolRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		schoolRepo:     schoolRepo,
	}
}

// Create creates a new department under an existing school
func (s *DepartmentService) Create(ctx context.Context, department *models.Department) error {
	if strings.TrimSpace(department.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	if !isValidCode(department.Code) {
		return fmt.Errorf("%w: code must be uppercase alphanumeric", ErrCatalogValidation)
	}

	if _, err := s.schoolRepo.GetByID(ctx, department.SchoolID); err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			return apperrors.ErrSchoolNotFound
		}
		return fmt.Errorf("error checking school: %w", err)
	}

	return s.departmentRepo.Create(ctx, department)
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// GetAll lists departments, optionally scoped to a school
func (s *DepartmentService) GetAll(ctx context.Context, schoolID *int64) ([]*models.Department, error) {
	if schoolID != nil {
		return s.departmentRepo.GetBySchoolID(ctx, *schoolID)
	}
	return s.departmentRepo.GetAll(ctx)
}

// Update updates a department
func (s *DepartmentService) Update(ctx context.Context, department *models.Department) error {
	if strings.TrimSpace(department.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	if !isValidCode(department.Code) {
		return fmt.Errorf("%w: code must be uppercase alphanumeric", ErrCatalogValidation)
	}
	return s.departmentRepo.Update(ctx, department)
}

// Delete deletes a department
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}

// CourseService handles degree programmes and their subjects
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	subjectRepo    *repositories.SubjectRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	subjectRepo *repositories.SubjectRepository,
	departmentRepo *repositories.DepartmentRepository,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		subjectRepo:    subjectRepo,
		departmentRepo: departmentRepo,
	}
}

// Create creates a new course under an existing department
func (s *CourseService) Create(ctx context.Context, course *models.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	if !isValidCode(course.Code) {
		return fmt.Errorf("%w: code must be uppercase alphanumeric", ErrCatalogValidation)
	}
	if course.DurationYears <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrCatalogValidation)
	}

	if _, err := s.departmentRepo.GetByID(ctx, course.DepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error checking department: %w", err)
	}

	return s.courseRepo.Create(ctx, course)
}

// GetByID retrieves a course by ID
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAll lists courses, optionally scoped to a department
func (s *CourseService) GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, departmentID)
}

// Update updates a course
func (s *CourseService) Update(ctx context.Context, course *models.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	if course.DurationYears <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrCatalogValidation)
	}
	return s.courseRepo.Update(ctx, course)
}

// Delete deletes a course
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// CreateSubject adds a subject to an existing course
func (s *CourseService) CreateSubject(ctx context.Context, subject *models.Subject) error {
	if strings.TrimSpace(subject.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	if subject.Semester <= 0 || subject.Credits <= 0 {
		return fmt.Errorf("%w: semester and credits must be positive", ErrCatalogValidation)
	}

	if _, err := s.courseRepo.GetByID(ctx, subject.CourseID); err != nil {
		return err
	}

	return s.subjectRepo.Create(ctx, subject)
}

// GetSubjects lists the subjects of a course, optionally for one semester
func (s *CourseService) GetSubjects(ctx context.Context, courseID int64, semester *int) ([]*models.Subject, error) {
	return s.subjectRepo.GetByCourseID(ctx, courseID, semester)
}

// GetSubject retrieves a subject by ID
func (s *CourseService) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// UpdateSubject updates a subject
func (s *CourseService) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	if strings.TrimSpace(subject.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	return s.subjectRepo.Update(ctx, subject)
}

// DeleteSubject deletes a subject
func (s *CourseService) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.Delete(ctx, id)
}

// FacultyService handles teaching-staff records
type FacultyService struct {
	facultyRepo    *repositories.FacultyMemberRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(facultyRepo *repositories.FacultyMemberRepository, departmentRepo *repositories.DepartmentRepository) *FacultyService {
	return &FacultyService{
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
	}
}

// Create creates a new faculty member under an existing department
func (s *FacultyService) Create(ctx context.Context, member *models.FacultyMember) error {
	if strings.TrimSpace(member.FirstName) == "" || strings.TrimSpace(member.LastName) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}

	if _, err := s.departmentRepo.GetByID(ctx, member.DepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error checking department: %w", err)
	}

	return s.facultyRepo.Create(ctx, member)
}

// GetByID retrieves a faculty member by ID
func (s *FacultyService) GetByID(ctx context.Context, id int64) (*models.FacultyMember, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

// GetAll lists faculty members, optionally scoped to a department
func (s *FacultyService) GetAll(ctx context.Context, departmentID *int64) ([]*models.FacultyMember, error) {
	return s.facultyRepo.GetAll(ctx, departmentID)
}

// Update updates a faculty member
func (s *FacultyService) Update(ctx context.Context, member *models.FacultyMember) error {
	if strings.TrimSpace(member.FirstName) == "" || strings.TrimSpace(member.LastName) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	return s.facultyRepo.Update(ctx, member)
}

// Delete deletes a faculty member
func (s *FacultyService) Delete(ctx context.Context, id int64) error {
	return s.facultyRepo.Delete(ctx, id)
}
