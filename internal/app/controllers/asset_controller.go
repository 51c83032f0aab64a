package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/models/dto"
	"github.com/sykli/college-backend/internal/app/services"
	"github.com/sykli/college-backend/internal/middleware"
)

// AssetController handles the IT asset register
type AssetController struct {
	assetService *services.AssetService
}

// NewAssetController creates a new AssetController
func NewAssetController(assetService *services.AssetService) *AssetController {
	return &AssetController{
		assetService: assetService,
	}
}

// Create registers a new asset
// @Summary Register an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssetRequest true "Asset information"
// @Success 201 {object} dto.APIResponse{data=models.Asset} "Asset registered"
// @Failure 409 {object} dto.ErrorResponse "Asset tag already in use"
// @Router /assets [post]
func (c *AssetController) Create(ctx *gin.Context) {
	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	asset := &models.Asset{
		Tag:         req.Tag,
		Name:        req.Name,
		Category:    req.Category,
		PurchasedAt: req.PurchasedAt,
	}
	if err := c.assetService.Create(ctx, asset); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(asset))
}

// GetAll lists assets
// @Summary List assets
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.APIResponse{data=[]models.Asset} "Assets retrieved"
// @Router /assets [get]
func (c *AssetController) GetAll(ctx *gin.Context) {
	var status *models.AssetStatus
	if raw := ctx.Query("status"); raw != "" {
		value := models.AssetStatus(raw)
		status = &value
	}
	var category *string
	if raw := ctx.Query("category"); raw != "" {
		category = &raw
	}

	assets, err := c.assetService.GetAll(ctx, status, category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assets))
}

// GetByID retrieves an asset
// @Summary Get asset by ID
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset retrieved"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Router /assets/{id} [get]
func (c *AssetController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	asset, err := c.assetService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// Update updates asset metadata and status
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Param request body dto.UpdateAssetRequest true "Asset information"
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset updated"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Router /assets/{id} [put]
func (c *AssetController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	asset := &models.Asset{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Status:   models.AssetStatus(req.Status),
	}
	if err := c.assetService.Update(ctx, asset); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// Assign hands an asset to a profile
// @Summary Assign an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Param request body dto.AssignAssetRequest true "Assignee"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Asset assigned"
// @Failure 404 {object} dto.ErrorResponse "Asset or profile not found"
// @Failure 409 {object} dto.ErrorResponse "Asset cannot be assigned"
// @Router /assets/{id}/assign [post]
func (c *AssetController) Assign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.assetService.Assign(ctx, id, req.ProfileID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Asset assigned"}))
}

// Unassign returns an asset to stock
// @Summary Unassign an asset
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Asset unassigned"
// @Router /assets/{id}/assign [delete]
func (c *AssetController) Unassign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assetService.Unassign(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Asset unassigned"}))
}

// UploadPhoto stores an asset photo
// @Summary Upload an asset photo
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} dto.APIResponse "Photo uploaded"
// @Router /assets/{id}/photo [post]
func (c *AssetController) UploadPhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	photoURL, err := c.assetService.UploadPhoto(ctx, id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"photoUrl": photoURL}))
}

// Delete removes an asset
// @Summary Delete an asset
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Asset deleted"
// @Router /assets/{id} [delete]
func (c *AssetController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assetService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Asset deleted"}))
}
