package models

import "time"

// EnrollmentIntent is the compensating-action log for the enrollment
// workflow. A row is written before the student upsert and marked COMPLETE
// once the application and profile updates have both landed. The
// reconciliation sweep replays the follow-up writes of PARTIAL/PENDING
// intents.
type EnrollmentIntent struct {
	ID            string      `json:"id" db:"id"` // uuid
	ApplicationID int64       `json:"applicationId" db:"application_id"`
	StudentNumber string      `json:"studentNumber" db:"student_number"`
	State         IntentState `json:"state" db:"state"`
	FailedSteps   []string    `json:"failedSteps,omitempty" db:"failed_steps"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}
