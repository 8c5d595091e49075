package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// SupportTicketController handles IT support ticket endpoints.
type SupportTicketController struct {
	ticketService *services.SupportTicketService
}

// NewSupportTicketController creates a new SupportTicketController
func NewSupportTicketController(ticketService *services.SupportTicketService) *SupportTicketController {
	return &SupportTicketController{ticketService: ticketService}
}

// CreateSupportTicket opens a ticket
// @Summary Create support ticket
// @Description Opens an IT support ticket for the authenticated staff member; new tickets start Open
// @Tags support-tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSupportTicketRequest true "Ticket information"
// @Success 201 {object} dto.APIResponse{data=models.SupportTicket} "Ticket created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /support-tickets [post]
func (c *SupportTicketController) CreateSupportTicket(ctx *gin.Context) {
	var req dto.CreateSupportTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	ticket, err := c.ticketService.CreateSupportTicket(ctx, middleware.StaffIDFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(ticket))
}

// GetSupportTicketByID retrieves a ticket
// @Summary Get support ticket by ID
// @Tags support-tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.APIResponse{data=models.SupportTicket} "Ticket retrieved"
// @Failure 404 {object} dto.APIResponse "Ticket not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /support-tickets/{id} [get]
func (c *SupportTicketController) GetSupportTicketByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	ticket, err := c.ticketService.GetSupportTicketByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(ticket))
}

// GetAllSupportTickets lists tickets
// @Summary List support tickets
// @Tags support-tickets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(Open, InProgress, Resolved, Closed)
// @Param category query string false "Filter by category" Enums(Hardware, Software, Network, Account, Other)
// @Success 200 {object} dto.APIResponse{data=[]models.SupportTicket} "Tickets retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid filter"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /support-tickets [get]
func (c *SupportTicketController) GetAllSupportTickets(ctx *gin.Context) {
	tickets, err := c.ticketService.GetAllSupportTickets(ctx, ctx.Query("status"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tickets))
}

// UpdateSupportTicket updates a ticket
// @Summary Update support ticket
// @Tags support-tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body dto.UpdateSupportTicketRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.SupportTicket} "Ticket updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Ticket not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /support-tickets/{id} [put]
func (c *SupportTicketController) UpdateSupportTicket(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSupportTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	ticket, err := c.ticketService.UpdateSupportTicket(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(ticket))
}

// DeleteSupportTicket removes a ticket
// @Summary Delete support ticket
// @Tags support-tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.APIResponse "Ticket deleted"
// @Failure 404 {object} dto.APIResponse "Ticket not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /support-tickets/{id} [delete]
func (c *SupportTicketController) DeleteSupportTicket(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.ticketService.DeleteSupportTicket(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
