package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// TransportFormController handles transport form endpoints.
type TransportFormController struct {
	formService *services.TransportFormService
}

// NewTransportFormController creates a new TransportFormController
func NewTransportFormController(formService *services.TransportFormService) *TransportFormController {
	return &TransportFormController{formService: formService}
}

// CreateTransportForm files a transport request
// @Summary Create transport form
// @Description Files a transport seat request for an existing student; new forms start Pending
// @Tags transport-forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTransportFormRequest true "Form information"
// @Success 201 {object} dto.APIResponse{data=models.TransportForm} "Form created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /transport-forms [post]
func (c *TransportFormController) CreateTransportForm(ctx *gin.Context) {
	var req dto.CreateTransportFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	form, err := c.formService.CreateTransportForm(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(form))
}

// GetTransportFormByID retrieves a form
// @Summary Get transport form by ID
// @Tags transport-forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.APIResponse{data=models.TransportForm} "Form retrieved"
// @Failure 404 {object} dto.APIResponse "Form not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /transport-forms/{id} [get]
func (c *TransportFormController) GetTransportFormByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	form, err := c.formService.GetTransportFormByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(form))
}

// GetAllTransportForms lists forms
// @Summary List transport forms
// @Tags transport-forms
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student"
// @Param status query string false "Filter by status" Enums(Pending, Approved, Rejected)
// @Success 200 {object} dto.APIResponse{data=[]models.TransportForm} "Forms retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid filter"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /transport-forms [get]
func (c *TransportFormController) GetAllTransportForms(ctx *gin.Context) {
	studentID, ok := parseInt64Query(ctx, "studentId")
	if !ok {
		return
	}

	forms, err := c.formService.GetAllTransportForms(ctx, studentID, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(forms))
}

// UpdateTransportForm updates a form
// @Summary Update transport form
// @Tags transport-forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param request body dto.UpdateTransportFormRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.TransportForm} "Form updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Form not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /transport-forms/{id} [put]
func (c *TransportFormController) UpdateTransportForm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransportFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	form, err := c.formService.UpdateTransportForm(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(form))
}

// DeleteTransportForm removes a form
// @Summary Delete transport form
// @Tags transport-forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.APIResponse "Form deleted"
// @Failure 404 {object} dto.APIResponse "Form not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /transport-forms/{id} [delete]
func (c *TransportFormController) DeleteTransportForm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.formService.DeleteTransportForm(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
