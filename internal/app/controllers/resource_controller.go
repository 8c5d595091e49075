package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// ResourceController handles teaching resource endpoints.
type ResourceController struct {
	resourceService *services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// CreateResource uploads a teaching resource
// @Summary Upload resource
// @Description Stores the uploaded file and records its metadata
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Resource title"
// @Param subject formData string true "Subject"
// @Param className formData string true "Class"
// @Param file formData file true "Resource file"
// @Success 201 {object} dto.APIResponse{data=models.Resource} "Resource created"
// @Failure 400 {object} dto.APIResponse "Invalid request data or missing file"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindError(ctx, err)
		return
	}

	resource, err := c.resourceService.CreateResource(ctx, middleware.StaffIDFromContext(ctx), &req, optionalFormFile(ctx, "file"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resource))
}

// GetResourceByID retrieves a resource
// @Summary Get resource by ID
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Resource retrieved"
// @Failure 404 {object} dto.APIResponse "Resource not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResourceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resource, err := c.resourceService.GetResourceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resource))
}

// GetAllResources lists resources
// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Filter by subject"
// @Param className query string false "Filter by class"
// @Success 200 {object} dto.APIResponse{data=[]models.Resource} "Resources retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /resources [get]
func (c *ResourceController) GetAllResources(ctx *gin.Context) {
	resources, err := c.resourceService.GetAllResources(ctx, ctx.Query("subject"), ctx.Query("className"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resources))
}

// UpdateResource updates a resource
// @Summary Update resource
// @Description Applies the present metadata fields; a new file replaces the stored one
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param file formData file false "Replacement file"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Resource updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Resource not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindError(ctx, err)
		return
	}

	resource, err := c.resourceService.UpdateResource(ctx, id, &req, optionalFormFile(ctx, "file"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resource))
}

// DeleteResource removes a resource
// @Summary Delete resource
// @Description Removes the resource record and its stored file
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse "Resource deleted"
// @Failure 404 {object} dto.APIResponse "Resource not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resourceService.DeleteResource(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
