package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfileRepository          *ProfileRepository
	TokenRepository            *TokenRepository
	SchoolRepository           *SchoolRepository
	DepartmentRepository       *DepartmentRepository
	CourseRepository           *CourseRepository
	SubjectRepository          *SubjectRepository
	FacultyMemberRepository    *FacultyMemberRepository
	ApplicationRepository      *ApplicationRepository
	StudentRepository          *StudentRepository
	EnrollmentIntentRepository *EnrollmentIntentRepository
	AssetRepository            *AssetRepository
	NewsRepository             *NewsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfileRepository:          NewProfileRepository(db),
		TokenRepository:            NewTokenRepository(db),
		SchoolRepository:           NewSchoolRepository(db),
		DepartmentRepository:       NewDepartmentRepository(db),
		CourseRepository:           NewCourseRepository(db),
		SubjectRepository:          NewSubjectRepository(db),
		FacultyMemberRepository:    NewFacultyMemberRepository(db),
		ApplicationRepository:      NewApplicationRepository(db),
		StudentRepository:          NewStudentRepository(db),
		EnrollmentIntentRepository: NewEnrollmentIntentRepository(db),
		AssetRepository:            NewAssetRepository(db),
		NewsRepository:             NewNewsRepository(db),
	}
}
