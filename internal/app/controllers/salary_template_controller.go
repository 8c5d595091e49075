package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// SalaryTemplateController handles salary template endpoints.
type SalaryTemplateController struct {
	templateService *services.SalaryTemplateService
}

// NewSalaryTemplateController creates a new SalaryTemplateController
func NewSalaryTemplateController(templateService *services.SalaryTemplateService) *SalaryTemplateController {
	return &SalaryTemplateController{templateService: templateService}
}

// CreateSalaryTemplate creates a template
// @Summary Create salary template
// @Tags salary-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSalaryTemplateRequest true "Template information"
// @Success 201 {object} dto.APIResponse{data=models.SalaryTemplate} "Template created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /salary-templates [post]
func (c *SalaryTemplateController) CreateSalaryTemplate(ctx *gin.Context) {
	var req dto.CreateSalaryTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	template, err := c.templateService.CreateSalaryTemplate(ctx, middleware.StaffIDFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(template))
}

// GetSalaryTemplateByID retrieves a template
// @Summary Get salary template by ID
// @Tags salary-templates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} dto.APIResponse{data=models.SalaryTemplate} "Template retrieved"
// @Failure 404 {object} dto.APIResponse "Template not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /salary-templates/{id} [get]
func (c *SalaryTemplateController) GetSalaryTemplateByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	template, err := c.templateService.GetSalaryTemplateByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(template))
}

// GetAllSalaryTemplates lists templates
// @Summary List salary templates
// @Tags salary-templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SalaryTemplate} "Templates retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /salary-templates [get]
func (c *SalaryTemplateController) GetAllSalaryTemplates(ctx *gin.Context) {
	templates, err := c.templateService.GetAllSalaryTemplates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(templates))
}

// UpdateSalaryTemplate updates a template
// @Summary Update salary template
// @Tags salary-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Param request body dto.UpdateSalaryTemplateRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.SalaryTemplate} "Template updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Template not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /salary-templates/{id} [put]
func (c *SalaryTemplateController) UpdateSalaryTemplate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSalaryTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	template, err := c.templateService.UpdateSalaryTemplate(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(template))
}

// DeleteSalaryTemplate removes a template
// @Summary Delete salary template
// @Tags salary-templates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} dto.APIResponse "Template deleted"
// @Failure 404 {object} dto.APIResponse "Template not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /salary-templates/{id} [delete]
func (c *SalaryTemplateController) DeleteSalaryTemplate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.templateService.DeleteSalaryTemplate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
