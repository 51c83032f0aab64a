package models

import "time"

// Student defines the enrolled-student model based on the 'students' table.
// application_id carries a unique constraint: re-running enrollment for the
// same application updates this row instead of inserting a second one.
type Student struct {
	ID                 int64            `json:"id" db:"id"`
	ProfileID          int64            `json:"profileId" db:"profile_id"`
	ApplicationID      int64            `json:"applicationId" db:"application_id"`
	CourseID           int64            `json:"courseId" db:"course_id"`
	StudentNumber      string           `json:"studentNumber" db:"student_number" example:"SYK-2025-1042"`
	InstitutionalEmail string           `json:"institutionalEmail" db:"institutional_email" example:"ada.lovelace@syklicollege.fi"`
	PersonalEmail      string           `json:"personalEmail" db:"personal_email"`
	EnrollmentStatus   EnrollmentStatus `json:"enrollmentStatus" db:"enrollment_status" example:"ACTIVE"`
	StartDate          time.Time        `json:"startDate" db:"start_date"`
	ExpectedGraduation time.Time        `json:"expectedGraduation" db:"expected_graduation"`
	CreatedAt          time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time        `json:"updatedAt" db:"updated_at"`

	Profile *Profile `json:"profile,omitempty"` // Relation, no db tag
	Course  *Course  `json:"course,omitempty"`  // Relation, no db tag
}
