package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// LeaveRequestController handles leave request endpoints.
type LeaveRequestController struct {
	leaveService *services.LeaveRequestService
}

// NewLeaveRequestController creates a new LeaveRequestController
func NewLeaveRequestController(leaveService *services.LeaveRequestService) *LeaveRequestController {
	return &LeaveRequestController{leaveService: leaveService}
}

// CreateLeaveRequest files a leave request
// @Summary Create leave request
// @Description Files a leave request for an existing staff member; new requests start Pending
// @Tags leave-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLeaveRequestRequest true "Request information"
// @Success 201 {object} dto.APIResponse{data=models.LeaveRequest} "Request created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Staff not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /leave-requests [post]
func (c *LeaveRequestController) CreateLeaveRequest(ctx *gin.Context) {
	var req dto.CreateLeaveRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	lr, err := c.leaveService.CreateLeaveRequest(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(lr))
}

// GetLeaveRequestByID retrieves a leave request
// @Summary Get leave request by ID
// @Tags leave-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=models.LeaveRequest} "Request retrieved"
// @Failure 404 {object} dto.APIResponse "Request not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /leave-requests/{id} [get]
func (c *LeaveRequestController) GetLeaveRequestByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	lr, err := c.leaveService.GetLeaveRequestByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(lr))
}

// GetAllLeaveRequests lists leave requests
// @Summary List leave requests
// @Tags leave-requests
// @Produce json
// @Security BearerAuth
// @Param staffId query int false "Filter by staff member"
// @Param status query string false "Filter by status" Enums(Pending, Approved, Rejected)
// @Success 200 {object} dto.APIResponse{data=[]models.LeaveRequest} "Requests retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid filter"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /leave-requests [get]
func (c *LeaveRequestController) GetAllLeaveRequests(ctx *gin.Context) {
	staffID, ok := parseInt64Query(ctx, "staffId")
	if !ok {
		return
	}

	requests, err := c.leaveService.GetAllLeaveRequests(ctx, staffID, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// UpdateLeaveRequest updates a leave request
// @Summary Update leave request
// @Tags leave-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateLeaveRequestRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.LeaveRequest} "Request updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Request not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /leave-requests/{id} [put]
func (c *LeaveRequestController) UpdateLeaveRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateLeaveRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	lr, err := c.leaveService.UpdateLeaveRequest(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(lr))
}

// DeleteLeaveRequest removes a leave request
// @Summary Delete leave request
// @Tags leave-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse "Request deleted"
// @Failure 404 {object} dto.APIResponse "Request not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /leave-requests/{id} [delete]
func (c *LeaveRequestController) DeleteLeaveRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.leaveService.DeleteLeaveRequest(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
