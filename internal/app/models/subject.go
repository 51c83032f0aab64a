package models

// Subject defines the subject model based on the 'subjects' table
type Subject struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	CourseID int64  `json:"courseId" db:"course_id" example:"1"`
	Name     string `json:"name" db:"name" example:"Distributed Systems"`
	Code     string `json:"code" db:"code" example:"BSE301"`
	Semester int    `json:"semester" db:"semester" example:"5"`
	Credits  int    `json:"credits" db:"credits" example:"5"`

	Course *Course `json:"course,omitempty"` // Relation, no db tag
}
