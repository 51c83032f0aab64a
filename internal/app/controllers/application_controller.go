package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/models/dto"
	"github.com/sykli/college-backend/internal/app/services"
	"github.com/sykli/college-backend/internal/middleware"
)

// ApplicationController handles admissions applications and enrollment
type ApplicationController struct {
	applicationService *services.ApplicationService
	enrollmentService  *services.EnrollmentService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(
	applicationService *services.ApplicationService,
	enrollmentService *services.EnrollmentService,
) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		enrollmentService:  enrollmentService,
	}
}

// Submit handles application submission
// @Summary Submit an application
// @Description Submits an application to a course for the authenticated applicant
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitApplicationRequest true "Application information"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Application for this course already exists"
// @Router /applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	profileID, ok := middleware.ProfileID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.applicationService.Submit(ctx, profileID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// GetMine lists the authenticated profile's applications
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Router /applications/mine [get]
func (c *ApplicationController) GetMine(ctx *gin.Context) {
	profileID, ok := middleware.ProfileID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	applications, err := c.applicationService.GetByProfileID(ctx, profileID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// GetAll lists applications, optionally filtered by status
// @Summary List applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Router /applications [get]
func (c *ApplicationController) GetAll(ctx *gin.Context) {
	var status *models.ApplicationStatus
	if raw := ctx.Query("status"); raw != "" {
		value := models.ApplicationStatus(raw)
		status = &value
	}

	applications, err := c.applicationService.GetAll(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// GetByID retrieves an application with its profile and course
// @Summary Get application by ID
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application retrieved"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// UpdateStatus moves an application through the admissions pipeline
// @Summary Update application status
// @Description Accepts or rejects an application, or records a payment
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Status updated"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx, id, models.ApplicationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// Enroll runs the enrollment workflow for an application
// @Summary Enroll an applicant
// @Description Creates the student record for an application, assigns a student number and institutional email, and promotes the profile
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Student enrolled"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Institutional email already in use"
// @Failure 500 {object} dto.ErrorResponse "Enrollment failed"
// @Router /applications/{id}/enroll [post]
func (c *ApplicationController) Enroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	result, err := c.enrollmentService.Enroll(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}
