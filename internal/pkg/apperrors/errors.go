package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Profile errors
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Admissions errors
var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application for this course already exists")
	ErrInvalidStatusTransition  = errors.New("invalid application status transition")
)

// Enrollment errors
var (
	ErrStudentNotFound          = errors.New("student not found")
	ErrStudentRecordFailed      = errors.New("failed to create student record")
	ErrStudentNumberExhausted   = errors.New("could not allocate a unique student number")
	ErrInstitutionalEmailExists = errors.New("institutional email already in use")
)

// Catalog errors
var (
	ErrSchoolNotFound          = errors.New("school not found")
	ErrSchoolAlreadyExists     = errors.New("school with this name or code already exists")
	ErrSchoolHasRelations      = errors.New("school has associated departments and cannot be deleted")
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name or code already exists")
	ErrDepartmentHasRelations  = errors.New("department has associated data and cannot be deleted")
	ErrCourseNotFound          = errors.New("course not found")
	ErrCourseAlreadyExists     = errors.New("course with this code already exists")
	ErrSubjectNotFound         = errors.New("subject not found")
	ErrSubjectAlreadyExists    = errors.New("subject with this code already exists")
	ErrFacultyMemberNotFound   = errors.New("faculty member not found")
)

// Asset errors
var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrAssetTagExists     = errors.New("asset tag already in use")
	ErrAssetNotAssignable = errors.New("asset is retired and cannot be assigned")
)

// News errors
var (
	ErrNewsItemNotFound = errors.New("news item not found")
)

// NewConflictError creates a conflict error with a caller-facing message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// CustomError carries a sentinel plus a caller-facing message
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
