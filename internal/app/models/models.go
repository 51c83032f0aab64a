package models

// RoleType represents the role attached to a profile
type RoleType string

const (
	RoleApplicant RoleType = "APPLICANT"
	RoleStudent   RoleType = "STUDENT"
	RoleAdmin     RoleType = "ADMIN"
)

// ApplicationStatus represents the admissions pipeline state of an application
type ApplicationStatus string

const (
	ApplicationSubmitted        ApplicationStatus = "SUBMITTED"
	ApplicationAccepted         ApplicationStatus = "ACCEPTED"
	ApplicationPaymentSubmitted ApplicationStatus = "PAYMENT_SUBMITTED"
	ApplicationEnrolled         ApplicationStatus = "ENROLLED"
	ApplicationRejected         ApplicationStatus = "REJECTED"
)

// EnrollmentStatus represents the academic standing of a student record
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentInactive  EnrollmentStatus = "INACTIVE"
	EnrollmentGraduated EnrollmentStatus = "GRADUATED"
	EnrollmentWithdrawn EnrollmentStatus = "WITHDRAWN"
)

// IntentState tracks how far an enrollment run got
type IntentState string

const (
	// IntentPending: intent recorded, student row not confirmed yet
	IntentPending IntentState = "PENDING"
	// IntentPartial: student row exists but a follow-up write failed
	IntentPartial IntentState = "PARTIAL"
	// IntentComplete: all three writes landed
	IntentComplete IntentState = "COMPLETE"
)

// AssetStatus represents the lifecycle state of an IT asset
type AssetStatus string

const (
	AssetInStock   AssetStatus = "IN_STOCK"
	AssetAssigned  AssetStatus = "ASSIGNED"
	AssetInRepair  AssetStatus = "IN_REPAIR"
	AssetRetired   AssetStatus = "RETIRED"
)

// NewsKind distinguishes news posts from events
type NewsKind string

const (
	KindNews  NewsKind = "NEWS"
	KindEvent NewsKind = "EVENT"
)
