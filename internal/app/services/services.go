package services

// Services defined in this package:
// - AuthService: registration, login and token refresh for profiles
// - ApplicationService: admissions pipeline up to the payment step
// - EnrollmentService: turns a paid application into a student record
// - StudentService: read and status operations on student records
// - SchoolService / DepartmentService / CourseService / FacultyService:
//   catalog management
// - AssetService: IT asset register
// - NewsService: news posts and events
