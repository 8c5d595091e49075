package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// DisciplinaryActionController handles disciplinary record endpoints.
type DisciplinaryActionController struct {
	actionService *services.DisciplinaryActionService
}

// NewDisciplinaryActionController creates a new DisciplinaryActionController
func NewDisciplinaryActionController(actionService *services.DisciplinaryActionService) *DisciplinaryActionController {
	return &DisciplinaryActionController{actionService: actionService}
}

// CreateDisciplinaryAction records an incident
// @Summary Create disciplinary record
// @Description Records a disciplinary incident for an existing student
// @Tags disciplinary-actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDisciplinaryActionRequest true "Record information"
// @Success 201 {object} dto.APIResponse{data=models.DisciplinaryAction} "Record created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /disciplinary-actions [post]
func (c *DisciplinaryActionController) CreateDisciplinaryAction(ctx *gin.Context) {
	var req dto.CreateDisciplinaryActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	action, err := c.actionService.CreateDisciplinaryAction(ctx, middleware.StaffIDFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(action))
}

// GetDisciplinaryActionByID retrieves a record
// @Summary Get disciplinary record by ID
// @Tags disciplinary-actions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=models.DisciplinaryAction} "Record retrieved"
// @Failure 404 {object} dto.APIResponse "Record not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /disciplinary-actions/{id} [get]
func (c *DisciplinaryActionController) GetDisciplinaryActionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	action, err := c.actionService.GetDisciplinaryActionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(action))
}

// GetAllDisciplinaryActions lists records
// @Summary List disciplinary records
// @Description Lists records by incident date descending, optionally limited to one student
// @Tags disciplinary-actions
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=[]models.DisciplinaryAction} "Records retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid studentId"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /disciplinary-actions [get]
func (c *DisciplinaryActionController) GetAllDisciplinaryActions(ctx *gin.Context) {
	studentID, ok := parseInt64Query(ctx, "studentId")
	if !ok {
		return
	}

	actions, err := c.actionService.GetAllDisciplinaryActions(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(actions))
}

// UpdateDisciplinaryAction updates a record
// @Summary Update disciplinary record
// @Tags disciplinary-actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body dto.UpdateDisciplinaryActionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.DisciplinaryAction} "Record updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Record or student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /disciplinary-actions/{id} [put]
func (c *DisciplinaryActionController) UpdateDisciplinaryAction(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDisciplinaryActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	action, err := c.actionService.UpdateDisciplinaryAction(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(action))
}

// DeleteDisciplinaryAction removes a record
// @Summary Delete disciplinary record
// @Tags disciplinary-actions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse "Record deleted"
// @Failure 404 {object} dto.APIResponse "Record not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /disciplinary-actions/{id} [delete]
func (c *DisciplinaryActionController) DeleteDisciplinaryAction(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.actionService.DeleteDisciplinaryAction(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
