package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// AchievementController handles achievement record endpoints.
type AchievementController struct {
	achievementService *services.AchievementService
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService *services.AchievementService) *AchievementController {
	return &AchievementController{achievementService: achievementService}
}

// CreateAchievement records an achievement
// @Summary Record achievement
// @Description Records an achievement for an existing student; the response carries the resolved student name
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAchievementRequest true "Achievement information"
// @Success 201 {object} dto.APIResponse{data=models.Achievement} "Achievement recorded"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /achievements [post]
func (c *AchievementController) CreateAchievement(ctx *gin.Context) {
	var req dto.CreateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	achievement, err := c.achievementService.CreateAchievement(ctx, middleware.StaffIDFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(achievement))
}

// GetAchievementByID retrieves an achievement
// @Summary Get achievement by ID
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement ID"
// @Success 200 {object} dto.APIResponse{data=models.Achievement} "Achievement retrieved"
// @Failure 404 {object} dto.APIResponse "Achievement not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /achievements/{id} [get]
func (c *AchievementController) GetAchievementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	achievement, err := c.achievementService.GetAchievementByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievement))
}

// GetAllAchievements lists achievements
// @Summary List achievements
// @Description Lists achievements by date descending, optionally limited to one student
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=[]models.Achievement} "Achievements retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid studentId"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /achievements [get]
func (c *AchievementController) GetAllAchievements(ctx *gin.Context) {
	studentID, ok := parseInt64Query(ctx, "studentId")
	if !ok {
		return
	}

	achievements, err := c.achievementService.GetAllAchievements(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievements))
}
