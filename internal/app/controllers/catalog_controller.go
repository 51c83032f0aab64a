package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/models/dto"
	"github.com/sykli/college-backend/internal/app/services"
	"github.com/sykli/college-backend/internal/middleware"
)

// CatalogController handles the organizational catalog: schools,
// departments, courses, subjects and faculty members
type CatalogController struct {
	schoolService     *services.SchoolService
	departmentService *services.DepartmentService
	courseService     *services.CourseService
	facultyService    *services.FacultyService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	schoolService *services.SchoolService,
	departmentService *services.DepartmentService,
	courseService *services.CourseService,
	facultyService *services.FacultyService,
) *CatalogController {
	return &CatalogController{
		schoolService:     schoolService,
		departmentService: departmentService,
		courseService:     courseService,
		facultyService:    facultyService,
	}
}

// optionalInt64Query parses an optional numeric query parameter
func optionalInt64Query(ctx *gin.Context, name string) *int64 {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// CreateSchool creates a new school
// @Summary Create a school
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSchoolRequest true "School information"
// @Success 201 {object} dto.APIResponse{data=models.School} "School created"
// @Failure 409 {object} dto.ErrorResponse "School already exists"
// @Router /schools [post]
func (c *CatalogController) CreateSchool(ctx *gin.Context) {
	var req dto.CreateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	school := &models.School{Name: req.Name, Code: req.Code}
	if err := c.schoolService.Create(ctx, school); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(school))
}

// GetAllSchools lists all schools
// @Summary List schools
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.School} "Schools retrieved"
// @Router /schools [get]
func (c *CatalogController) GetAllSchools(ctx *gin.Context) {
	schools, err := c.schoolService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schools))
}

// GetSchoolByID retrieves a school
// @Summary Get school by ID
// @Tags catalog
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} dto.APIResponse{data=models.School} "School retrieved"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id} [get]
func (c *CatalogController) GetSchoolByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	school, err := c.schoolService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}

// UpdateSchool updates a school's name and code
// @Summary Update a school
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID"
// @Param request body dto.UpdateSchoolRequest true "School information"
// @Success 200 {object} dto.APIResponse{data=models.School} "School updated"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id} [put]
func (c *CatalogController) UpdateSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	school := &models.School{ID: id, Name: req.Name, Code: req.Code}
	if err := c.schoolService.Update(ctx, school); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}

// DeleteSchool deletes a school without departments
// @Summary Delete a school
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "School deleted"
// @Failure 409 {object} dto.ErrorResponse "School has departments"
// @Router /schools/{id} [delete]
func (c *CatalogController) DeleteSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.schoolService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "School deleted"}))
}

// CreateDepartment creates a new department
// @Summary Create a department
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Department} "Department created"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 409 {object} dto.ErrorResponse "Department already exists"
// @Router /departments [post]
func (c *CatalogController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department := &models.Department{SchoolID: req.SchoolID, Name: req.Name, Code: req.Code}
	if err := c.departmentService.Create(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(department))
}

// GetAllDepartments lists departments
// @Summary List departments
// @Tags catalog
// @Produce json
// @Param schoolId query int false "Filter by school ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments retrieved"
// @Router /departments [get]
func (c *CatalogController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAll(ctx, optionalInt64Query(ctx, "schoolId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// GetDepartmentByID retrieves a department
// @Summary Get department by ID
// @Tags catalog
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department retrieved"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *CatalogController) GetDepartmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	department, err := c.departmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// UpdateDepartment updates a department
// @Summary Update a department
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Department information"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department updated"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [put]
func (c *CatalogController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department := &models.Department{ID: id, SchoolID: req.SchoolID, Name: req.Name, Code: req.Code}
	if err := c.departmentService.Update(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// DeleteDepartment deletes a department without dependent data
// @Summary Delete a department
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Department deleted"
// @Router /departments/{id} [delete]
func (c *CatalogController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Department deleted"}))
}

// CreateCourse creates a new degree programme
// @Summary Create a course
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Router /courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	course := &models.Course{
		DepartmentID:  req.DepartmentID,
		Name:          req.Name,
		Code:          req.Code,
		DurationYears: req.DurationYears,
		Description:   req.Description,
	}
	if err := c.courseService.Create(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// GetAllCourses lists courses
// @Summary List courses
// @Tags catalog
// @Produce json
// @Param departmentId query int false "Filter by department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved"
// @Router /courses [get]
func (c *CatalogController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx, optionalInt64Query(ctx, "departmentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseByID retrieves a course
// @Summary Get course by ID
// @Tags catalog
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// UpdateCourse updates a course, keeping its code and department
// @Summary Update a course
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CatalogController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course.Name = req.Name
	course.DurationYears = req.DurationYears
	course.Description = req.Description
	if err := c.courseService.Update(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// DeleteCourse deletes a course without dependent data
// @Summary Delete a course
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted"
// @Failure 409 {object} dto.ErrorResponse "Course has dependent data"
// @Router /courses/{id} [delete]
func (c *CatalogController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}))
}

// CreateSubject adds a subject to a course
// @Summary Create a subject
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /subjects [post]
func (c *CatalogController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	subject := &models.Subject{
		CourseID: req.CourseID,
		Name:     req.Name,
		Code:     req.Code,
		Semester: req.Semester,
		Credits:  req.Credits,
	}
	if err := c.courseService.CreateSubject(ctx, subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(subject))
}

// GetCourseSubjects lists the subjects of a course
// @Summary List course subjects
// @Tags catalog
// @Produce json
// @Param id path int true "Course ID"
// @Param semester query int false "Filter by semester"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved"
// @Router /courses/{id}/subjects [get]
func (c *CatalogController) GetCourseSubjects(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var semester *int
	if raw := ctx.Query("semester"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			semester = &value
		}
	}

	subjects, err := c.courseService.GetSubjects(ctx, id, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjects))
}

// UpdateSubject updates a subject, keeping its code and course
// @Summary Update a subject
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Subject information"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject updated"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [put]
func (c *CatalogController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	subject, err := c.courseService.GetSubject(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	subject.Name = req.Name
	subject.Semester = req.Semester
	subject.Credits = req.Credits
	if err := c.courseService.UpdateSubject(ctx, subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subject))
}

// DeleteSubject deletes a subject
// @Summary Delete a subject
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Subject deleted"
// @Router /subjects/{id} [delete]
func (c *CatalogController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Subject deleted"}))
}

// CreateFacultyMember creates a new faculty member
// @Summary Create a faculty member
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyMemberRequest true "Faculty member information"
// @Success 201 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member created"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /faculty-members [post]
func (c *CatalogController) CreateFacultyMember(ctx *gin.Context) {
	var req dto.CreateFacultyMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	member := &models.FacultyMember{
		DepartmentID: req.DepartmentID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Title:        req.Title,
	}
	if err := c.facultyService.Create(ctx, member); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(member))
}

// GetAllFacultyMembers lists faculty members
// @Summary List faculty members
// @Tags catalog
// @Produce json
// @Param departmentId query int false "Filter by department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyMember} "Faculty members retrieved"
// @Router /faculty-members [get]
func (c *CatalogController) GetAllFacultyMembers(ctx *gin.Context) {
	members, err := c.facultyService.GetAll(ctx, optionalInt64Query(ctx, "departmentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(members))
}

// GetFacultyMemberByID retrieves a faculty member
// @Summary Get faculty member by ID
// @Tags catalog
// @Produce json
// @Param id path int true "Faculty member ID"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member retrieved"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty-members/{id} [get]
func (c *CatalogController) GetFacultyMemberByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	member, err := c.facultyService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(member))
}

// UpdateFacultyMember updates a faculty member
// @Summary Update a faculty member
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty member ID"
// @Param request body dto.UpdateFacultyMemberRequest true "Faculty member information"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member updated"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty-members/{id} [put]
func (c *CatalogController) UpdateFacultyMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	member := &models.FacultyMember{
		ID:           id,
		DepartmentID: req.DepartmentID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Title:        req.Title,
	}
	if err := c.facultyService.Update(ctx, member); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(member))
}

// DeleteFacultyMember deletes a faculty member
// @Summary Delete a faculty member
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty member ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty member deleted"
// @Router /faculty-members/{id} [delete]
func (c *CatalogController) DeleteFacultyMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Faculty member deleted"}))
}
