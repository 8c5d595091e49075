package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
)

// ProjectController handles project and contribution endpoints. All project
// operations act on the authenticated staff member's own projects.
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// optionalFormFile returns the named multipart file, or nil when absent.
func optionalFormFile(ctx *gin.Context, name string) *multipart.FileHeader {
	file, err := ctx.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}

// CreateProject creates a project
// @Summary Create project
// @Description Creates a project from multipart form data; evaluationCriteria and groups are JSON-encoded strings, and an optional attachment file can be included
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Project title"
// @Param className formData string true "Class"
// @Param section formData string true "Section"
// @Param subject formData string true "Subject"
// @Param startDate formData string true "Start date"
// @Param endDate formData string true "End date"
// @Param description formData string false "Description"
// @Param status formData string false "Status" Enums(Planned, In Progress, Completed, Evaluated)
// @Param evaluationCriteria formData string false "JSON array of {criterion, weightage}"
// @Param groups formData string false "JSON array of {name, studentIds}"
// @Param attachment formData file false "Attachment file"
// @Success 201 {object} dto.APIResponse{data=models.Project} "Project created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindError(ctx, err)
		return
	}

	project, err := c.projectService.CreateProject(ctx, middleware.StaffIDFromContext(ctx), &req, optionalFormFile(ctx, "attachment"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(project))
}

// GetProjectByID retrieves one of the actor's projects
// @Summary Get project by ID
// @Description Retrieves the authenticated staff member's project; another owner's project is reported as not found
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project retrieved"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /projects/{id} [get]
func (c *ProjectController) GetProjectByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	project, err := c.projectService.GetProjectByID(ctx, id, middleware.StaffIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// GetAllProjects lists the actor's projects
// @Summary List projects
// @Description Lists the authenticated staff member's projects by start date descending
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /projects [get]
func (c *ProjectController) GetAllProjects(ctx *gin.Context) {
	projects, err := c.projectService.GetAllProjects(ctx, middleware.StaffIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects))
}

// UpdateProject updates one of the actor's projects
// @Summary Update project
// @Description Applies the present form fields to the project; a new attachment replaces the stored file
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param status formData string false "Status" Enums(Planned, In Progress, Completed, Evaluated)
// @Param attachment formData file false "Replacement attachment"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindError(ctx, err)
		return
	}

	project, err := c.projectService.UpdateProject(ctx, id, middleware.StaffIDFromContext(ctx), &req, optionalFormFile(ctx, "attachment"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// DeleteProject removes one of the actor's projects
// @Summary Delete project
// @Description Removes the project and its stored attachment; contribution notes are left in place
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse "Project deleted"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(ctx, id, middleware.StaffIDFromContext(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}

// CreateContribution records a contribution note
// @Summary Record contribution
// @Description Records a dated evaluation note for a student on the actor's project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.CreateContributionRequest true "Contribution information"
// @Success 201 {object} dto.APIResponse{data=models.Contribution} "Contribution recorded"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Project or student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /projects/{id}/contributions [post]
func (c *ProjectController) CreateContribution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	contribution, err := c.projectService.CreateContribution(ctx, id, middleware.StaffIDFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(contribution))
}

// GetContributions lists a project's contribution notes
// @Summary List contributions
// @Description Lists the project's contribution notes, newest first, with student name and roll number
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Contribution} "Contributions retrieved"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /projects/{id}/contributions [get]
func (c *ProjectController) GetContributions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	contributions, err := c.projectService.GetContributions(ctx, id, middleware.StaffIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contributions))
}
