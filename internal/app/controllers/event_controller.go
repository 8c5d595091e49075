package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// EventController handles event and participant endpoints.
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent creates an event
// @Summary Create event
// @Description Creates an event owned by the authenticated staff member
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx, middleware.StaffIDFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// GetEventByID retrieves an event
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event retrieved"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// GetAllEvents lists events
// @Summary List events
// @Description Lists events newest first, optionally filtered by category
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category" Enums(club, competition, cultural, other)
// @Success 200 {object} dto.APIResponse{data=[]models.Event} "Events retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid category"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events [get]
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	events, err := c.eventService.GetAllEvents(ctx, ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// UpdateEvent updates an event
// @Summary Update event
// @Description Applies the present fields to the event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEvent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// DeleteEvent removes an event
// @Summary Delete event
// @Description Removes an event and its participant rows
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse "Event deleted"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}

// AddParticipant adds a student to an event
// @Summary Add event participant
// @Description Adds a student to the event's participant set; adding an existing participant is a no-op
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.ParticipantRequest true "Student to add"
// @Success 200 {object} dto.APIResponse "Participant added"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Event or student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id}/participants [post]
func (c *EventController) AddParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	added, err := c.eventService.AddParticipant(ctx, id, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"added": added}))
}

// RemoveParticipant removes a student from an event
// @Summary Remove event participant
// @Description Removes a student from the event's participant set; removing an absent student is a no-op
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.ParticipantRequest true "Student to remove"
// @Success 200 {object} dto.APIResponse "Participant removed"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id}/participants [delete]
func (c *EventController) RemoveParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	if err := c.eventService.RemoveParticipant(ctx, id, req.StudentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"removed": true}))
}

// GetParticipants lists an event's participants
// @Summary List event participants
// @Description Lists the event's participants in insertion order with student details
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]models.EventParticipant} "Participants retrieved"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id}/participants [get]
func (c *EventController) GetParticipants(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	participants, err := c.eventService.GetParticipants(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participants))
}
