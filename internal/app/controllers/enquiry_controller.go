package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// EnquiryController handles enquiry endpoints. Creation is public so
// prospective families can reach the school without an account.
type EnquiryController struct {
	enquiryService *services.EnquiryService
}

// NewEnquiryController creates a new EnquiryController
func NewEnquiryController(enquiryService *services.EnquiryService) *EnquiryController {
	return &EnquiryController{enquiryService: enquiryService}
}

// CreateEnquiry records an enquiry
// @Summary Create enquiry
// @Description Records an admission or general enquiry; new enquiries start in the New status
// @Tags enquiries
// @Accept json
// @Produce json
// @Param request body dto.CreateEnquiryRequest true "Enquiry information"
// @Success 201 {object} dto.APIResponse{data=models.Enquiry} "Enquiry created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enquiries [post]
func (c *EnquiryController) CreateEnquiry(ctx *gin.Context) {
	var req dto.CreateEnquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	enquiry, err := c.enquiryService.CreateEnquiry(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enquiry))
}

// GetEnquiryByID retrieves an enquiry
// @Summary Get enquiry by ID
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enquiry ID"
// @Success 200 {object} dto.APIResponse{data=models.Enquiry} "Enquiry retrieved"
// @Failure 404 {object} dto.APIResponse "Enquiry not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enquiries/{id} [get]
func (c *EnquiryController) GetEnquiryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enquiry, err := c.enquiryService.GetEnquiryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enquiry))
}

// GetAllEnquiries lists enquiries
// @Summary List enquiries
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(New, InProgress, Closed)
// @Success 200 {object} dto.APIResponse{data=[]models.Enquiry} "Enquiries retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid filter"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enquiries [get]
func (c *EnquiryController) GetAllEnquiries(ctx *gin.Context) {
	enquiries, err := c.enquiryService.GetAllEnquiries(ctx, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enquiries))
}

// UpdateEnquiry updates an enquiry
// @Summary Update enquiry
// @Tags enquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enquiry ID"
// @Param request body dto.UpdateEnquiryRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Enquiry} "Enquiry updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Enquiry not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enquiries/{id} [put]
func (c *EnquiryController) UpdateEnquiry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEnquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	enquiry, err := c.enquiryService.UpdateEnquiry(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enquiry))
}

// DeleteEnquiry removes an enquiry
// @Summary Delete enquiry
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enquiry ID"
// @Success 200 {object} dto.APIResponse "Enquiry deleted"
// @Failure 404 {object} dto.APIResponse "Enquiry not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enquiries/{id} [delete]
func (c *EnquiryController) DeleteEnquiry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enquiryService.DeleteEnquiry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
