package models

import "time"

// Application defines the admissions application model based on the
// 'applications' table. One profile may apply to a course at most once.
type Application struct {
	ID        int64             `json:"id" db:"id"`
	ProfileID int64             `json:"profileId" db:"profile_id"`
	CourseID  int64             `json:"courseId" db:"course_id"`
	Status    ApplicationStatus `json:"status" db:"status" example:"PAYMENT_SUBMITTED"`
	Motivation *string          `json:"motivation,omitempty" db:"motivation"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`

	Profile *Profile `json:"profile,omitempty"` // Relation, no db tag
	Course  *Course  `json:"course,omitempty"`  // Relation, no db tag
}
