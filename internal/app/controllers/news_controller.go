package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/models/dto"
	"github.com/sykli/college-backend/internal/app/services"
	"github.com/sykli/college-backend/internal/middleware"
)

// NewsController handles news posts and events
type NewsController struct {
	newsService *services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService *services.NewsService) *NewsController {
	return &NewsController{
		newsService: newsService,
	}
}

// Create publishes a news post or event
// @Summary Publish a news item
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "News item"
// @Success 201 {object} dto.APIResponse{data=models.NewsItem} "News item published"
// @Router /news [post]
func (c *NewsController) Create(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	item := &models.NewsItem{
		Kind:      models.NewsKind(req.Kind),
		Title:     req.Title,
		Body:      req.Body,
		EventDate: req.EventDate,
	}
	if err := c.newsService.Create(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(item))
}

// GetAll lists news items newest first
// @Summary List news items
// @Tags news
// @Produce json
// @Param kind query string false "Filter by kind (NEWS or EVENT)"
// @Success 200 {object} dto.APIResponse{data=[]models.NewsItem} "News items retrieved"
// @Router /news [get]
func (c *NewsController) GetAll(ctx *gin.Context) {
	var kind *models.NewsKind
	if raw := ctx.Query("kind"); raw != "" {
		value := models.NewsKind(raw)
		kind = &value
	}

	items, err := c.newsService.GetAll(ctx, kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// GetByID retrieves a news item
// @Summary Get news item by ID
// @Tags news
// @Produce json
// @Param id path int true "News item ID"
// @Success 200 {object} dto.APIResponse{data=models.NewsItem} "News item retrieved"
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Router /news/{id} [get]
func (c *NewsController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	item, err := c.newsService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(item))
}

// Update edits a news item
// @Summary Update a news item
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News item ID"
// @Param request body dto.UpdateNewsRequest true "News item"
// @Success 200 {object} dto.APIResponse{data=models.NewsItem} "News item updated"
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Router /news/{id} [put]
func (c *NewsController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	item := &models.NewsItem{
		ID:        id,
		Title:     req.Title,
		Body:      req.Body,
		EventDate: req.EventDate,
	}
	if err := c.newsService.Update(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(item))
}

// UploadCover stores a cover image for a news item
// @Summary Upload a news cover image
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "News item ID"
// @Param cover formData file true "Cover image"
// @Success 200 {object} dto.APIResponse "Cover uploaded"
// @Router /news/{id}/cover [post]
func (c *NewsController) UploadCover(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("cover")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	coverURL, err := c.newsService.UploadCover(ctx, id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"coverUrl": coverURL}))
}

// Delete removes a news item
// @Summary Delete a news item
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News item ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "News item deleted"
// @Router /news/{id} [delete]
func (c *NewsController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.newsService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "News item deleted"}))
}
