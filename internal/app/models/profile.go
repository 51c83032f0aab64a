package models

import "time"

// Profile defines the user identity model based on the 'profiles' table.
// A profile exists independently of enrollment; the enrollment workflow
// promotes its role to STUDENT and attaches the generated student number.
type Profile struct {
	ID            int64      `json:"id" db:"id" example:"1"`
	Email         string     `json:"email" db:"email" example:"ada@example.com"`
	Password      string     `json:"-" db:"password"`
	FirstName     string     `json:"firstName" db:"first_name" example:"Ada"`
	LastName      string     `json:"lastName" db:"last_name" example:"Lovelace"`
	RoleType      RoleType   `json:"roleType" db:"role_type" example:"APPLICANT"`
	StudentNumber *string    `json:"studentNumber,omitempty" db:"student_number" example:"SYK-2025-1042"`
	IsActive      bool       `json:"isActive" db:"is_active" example:"true"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// FullName returns the display name used in notifications
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
