package dto

// CreateSchoolRequest is the payload for creating a school
type CreateSchoolRequest struct {
	Name string `json:"name" binding:"required" example:"School of Technology"`
	Code string `json:"code" binding:"required,uppercase,alphanum" example:"TECH"`
}

// CreateDepartmentRequest is the payload for creating a department
type CreateDepartmentRequest struct {
	SchoolID int64  `json:"schoolId" binding:"required,min=1" example:"1"`
	Name     string `json:"name" binding:"required" example:"Information Technology"`
	Code     string `json:"code" binding:"required,uppercase,alphanum" example:"IT"`
}

// CreateCourseRequest is the payload for creating a degree programme
type CreateCourseRequest struct {
	DepartmentID  int64   `json:"departmentId" binding:"required,min=1" example:"1"`
	Name          string  `json:"name" binding:"required" example:"Bachelor of Software Engineering"`
	Code          string  `json:"code" binding:"required,uppercase,alphanum" example:"BSE"`
	DurationYears int     `json:"durationYears" binding:"required,min=1,max=8" example:"3"`
	Description   *string `json:"description,omitempty"`
}

// CreateSubjectRequest is the payload for creating a subject within a course
type CreateSubjectRequest struct {
	CourseID int64  `json:"courseId" binding:"required,min=1" example:"1"`
	Name     string `json:"name" binding:"required" example:"Distributed Systems"`
	Code     string `json:"code" binding:"required" example:"BSE301"`
	Semester int    `json:"semester" binding:"required,min=1,max=16" example:"5"`
	Credits  int    `json:"credits" binding:"required,min=1,max=30" example:"5"`
}

// UpdateSchoolRequest is the payload for renaming or recoding a school
type UpdateSchoolRequest struct {
	Name string `json:"name" binding:"required" example:"School of Technology"`
	Code string `json:"code" binding:"required,uppercase,alphanum" example:"TECH"`
}

// UpdateDepartmentRequest is the payload for updating a department
type UpdateDepartmentRequest struct {
	SchoolID int64  `json:"schoolId" binding:"required,min=1" example:"1"`
	Name     string `json:"name" binding:"required" example:"Information Technology"`
	Code     string `json:"code" binding:"required,uppercase,alphanum" example:"IT"`
}

// UpdateCourseRequest is the payload for updating a degree programme
type UpdateCourseRequest struct {
	Name          string  `json:"name" binding:"required" example:"Bachelor of Software Engineering"`
	DurationYears int     `json:"durationYears" binding:"required,min=1,max=8" example:"3"`
	Description   *string `json:"description,omitempty"`
}

// UpdateSubjectRequest is the payload for updating a subject
type UpdateSubjectRequest struct {
	Name     string `json:"name" binding:"required" example:"Distributed Systems"`
	Semester int    `json:"semester" binding:"required,min=1,max=16" example:"5"`
	Credits  int    `json:"credits" binding:"required,min=1,max=30" example:"5"`
}

// UpdateFacultyMemberRequest is the payload for updating a faculty member
type UpdateFacultyMemberRequest struct {
	DepartmentID int64  `json:"departmentId" binding:"required,min=1" example:"1"`
	FirstName    string `json:"firstName" binding:"required" example:"Grace"`
	LastName     string `json:"lastName" binding:"required" example:"Hopper"`
	Email        string `json:"email" binding:"required,email" example:"grace.hopper@syklicollege.fi"`
	Title        string `json:"title" binding:"required" example:"Senior Lecturer"`
}

// CreateFacultyMemberRequest is the payload for creating a faculty member
type CreateFacultyMemberRequest struct {
	DepartmentID int64  `json:"departmentId" binding:"required,min=1" example:"1"`
	FirstName    string `json:"firstName" binding:"required" example:"Grace"`
	LastName     string `json:"lastName" binding:"required" example:"Hopper"`
	Email        string `json:"email" binding:"required,email" example:"grace.hopper@syklicollege.fi"`
	Title        string `json:"title" binding:"required" example:"Senior Lecturer"`
}
