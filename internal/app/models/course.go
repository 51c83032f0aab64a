package models

// Course defines the degree programme model based on the 'courses' table
type Course struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	DepartmentID  int64  `json:"departmentId" db:"department_id" example:"1"`
	Name          string `json:"name" db:"name" example:"Bachelor of Software Engineering"`
	Code          string `json:"code" db:"code" example:"BSE"`
	DurationYears int    `json:"durationYears" db:"duration_years" example:"3"`
	Description   *string `json:"description,omitempty" db:"description"`

	Department *Department `json:"department,omitempty"` // Relation, no db tag
}
