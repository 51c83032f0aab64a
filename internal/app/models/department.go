package models

// Department defines the department model based on the 'departments' table
type Department struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	SchoolID int64  `json:"schoolId" db:"school_id" example:"1"`
	Name     string `json:"name" db:"name" example:"Information Technology"`
	Code     string `json:"code" db:"code" example:"IT"`

	School *School `json:"school,omitempty"` // Relation, no db tag
}
