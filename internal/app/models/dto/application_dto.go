package dto

// SubmitApplicationRequest is the payload for submitting an admissions
// application to a course
type SubmitApplicationRequest struct {
	CourseID   int64   `json:"courseId" binding:"required,min=1" example:"1"`
	Motivation *string `json:"motivation,omitempty"`
}

// UpdateApplicationStatusRequest moves an application through the admissions
// pipeline (accept, reject, record payment)
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED PAYMENT_SUBMITTED" example:"ACCEPTED"`
}

// EnrollmentResponse is returned by the enroll operation
type EnrollmentResponse struct {
	StudentNumber      string `json:"studentNumber" example:"SYK-2025-1042"`
	InstitutionalEmail string `json:"institutionalEmail" example:"ada.lovelace@syklicollege.fi"`
}

// UpdateStudentStatusRequest changes a student's academic standing
type UpdateStudentStatusRequest struct {
	EnrollmentStatus string `json:"enrollmentStatus" binding:"required,oneof=ACTIVE INACTIVE GRADUATED WITHDRAWN" example:"GRADUATED"`
}
