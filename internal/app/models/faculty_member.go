package models

// FacultyMember defines the teaching-staff model based on the
// 'faculty_members' table
type FacultyMember struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	DepartmentID int64  `json:"departmentId" db:"department_id" example:"1"`
	FirstName    string `json:"firstName" db:"first_name" example:"Grace"`
	LastName     string `json:"lastName" db:"last_name" example:"Hopper"`
	Email        string `json:"email" db:"email" example:"grace.hopper@syklicollege.fi"`
	Title        string `json:"title" db:"title" example:"Senior Lecturer"`

	Department *Department `json:"department,omitempty"` // Relation, no db tag
}
