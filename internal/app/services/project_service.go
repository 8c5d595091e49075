package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/filestorage"
	"github.com/evren/schoolhub/internal/pkg/helpers"
	"github.com/evren/schoolhub/internal/pkg/logger"
	"github.com/evren/schoolhub/internal/pkg/validation"
)

// ProjectStore is the persistence surface for projects. Every read and write
// is scoped to the owning staff member.
type ProjectStore interface {
	Create(ctx context.Context, p *models.Project) error
	GetByIDForOwner(ctx context.Context, id, ownerID int64) (*models.Project, error)
	GetAllForOwner(ctx context.Context, ownerID int64) ([]*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	DeleteForOwner(ctx context.Context, id, ownerID int64) error
}

// ContributionStore is the persistence surface for contribution notes.
type ContributionStore interface {
	Create(ctx context.Context, c *models.Contribution) error
	GetByProjectID(ctx context.Context, projectID int64) ([]*models.Contribution, error)
}

// ProjectService handles teacher-owned group projects and the contribution
// notes recorded against them.
type ProjectService struct {
	projectStore      ProjectStore
	contributionStore ContributionStore
	studentChecker    StudentChecker
	fileStorage       filestorage.FileStorage
}

// NewProjectService creates a new project service.
func NewProjectService(
	projectStore ProjectStore,
	contributionStore ContributionStore,
	studentChecker StudentChecker,
	fileStorage filestorage.FileStorage,
) *ProjectService {
	return &ProjectService{
		projectStore:      projectStore,
		contributionStore: contributionStore,
		studentChecker:    studentChecker,
		fileStorage:       fileStorage,
	}
}

// parseCriteria decodes the JSON-encoded evaluation criteria form field.
// Empty input means an empty list; malformed input is a validation error.
func parseCriteria(raw string) ([]models.EvaluationCriterion, error) {
	if raw == "" {
		return []models.EvaluationCriterion{}, nil
	}
	var criteria []models.EvaluationCriterion
	if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
		return nil, apperrors.NewValidationError("malformed evaluationCriteria JSON")
	}
	return criteria, nil
}

// parseGroups decodes the JSON-encoded groups form field.
func parseGroups(raw string) ([]models.ProjectGroup, error) {
	if raw == "" {
		return []models.ProjectGroup{}, nil
	}
	var groups []models.ProjectGroup
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		return nil, apperrors.NewValidationError("malformed groups JSON")
	}
	return groups, nil
}

// CreateProject creates a project owned by the acting staff member. An
// optional attachment is stored and its URL stamped onto the record.
func (s *ProjectService) CreateProject(ctx context.Context, actorID int64, req *dto.CreateProjectRequest, attachment *multipart.FileHeader) (*models.Project, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectStatusPlanned
	}
	if !validation.OneOf(status, models.ProjectStatuses...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid project status: %s", status))
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid startDate")
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid endDate")
	}

	criteria, err := parseCriteria(req.EvaluationCriteria)
	if err != nil {
		return nil, err
	}
	groups, err := parseGroups(req.Groups)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:              req.Title,
		Description:        req.Description,
		ClassName:          req.ClassName,
		Section:            req.Section,
		Subject:            req.Subject,
		StartDate:          startDate,
		EndDate:            endDate,
		Status:             status,
		EvaluationCriteria: criteria,
		Groups:             groups,
		CreatedBy:          actorID,
	}

	if attachment != nil {
		url, err := s.fileStorage.SaveFileWithPath(attachment, "resources")
		if err != nil {
			return nil, fmt.Errorf("error saving attachment: %w", err)
		}
		project.AttachmentURL = &url
	}

	if err := s.projectStore.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// GetProjectByID retrieves a project owned by the actor. Another owner's
// project looks the same as a missing one.
func (s *ProjectService) GetProjectByID(ctx context.Context, id, actorID int64) (*models.Project, error) {
	return s.projectStore.GetByIDForOwner(ctx, id, actorID)
}

// GetAllProjects lists the actor's projects by start date descending.
func (s *ProjectService) GetAllProjects(ctx context.Context, actorID int64) ([]*models.Project, error) {
	return s.projectStore.GetAllForOwner(ctx, actorID)
}

// UpdateProject applies the present fields of the request to the actor's
// project. Absent fields keep their stored values; a new attachment replaces
// the old file.
func (s *ProjectService) UpdateProject(ctx context.Context, id, actorID int64, req *dto.UpdateProjectRequest, attachment *multipart.FileHeader) (*models.Project, error) {
	project, err := s.projectStore.GetByIDForOwner(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ClassName != nil {
		project.ClassName = *req.ClassName
	}
	if req.Section != nil {
		project.Section = *req.Section
	}
	if req.Subject != nil {
		project.Subject = *req.Subject
	}
	if req.StartDate != nil {
		startDate, err := helpers.ParseDate(*req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid startDate")
		}
		project.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := helpers.ParseDate(*req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid endDate")
		}
		project.EndDate = endDate
	}
	if req.Status != nil {
		if !validation.OneOf(*req.Status, models.ProjectStatuses...) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid project status: %s", *req.Status))
		}
		project.Status = *req.Status
	}
	if req.EvaluationCriteria != nil {
		criteria, err := parseCriteria(*req.EvaluationCriteria)
		if err != nil {
			return nil, err
		}
		project.EvaluationCriteria = criteria
	}
	if req.Groups != nil {
		groups, err := parseGroups(*req.Groups)
		if err != nil {
			return nil, err
		}
		project.Groups = groups
	}

	if attachment != nil {
		oldURL := project.AttachmentURL
		url, err := s.fileStorage.SaveFileWithPath(attachment, "resources")
		if err != nil {
			return nil, fmt.Errorf("error saving attachment: %w", err)
		}
		project.AttachmentURL = &url
		if oldURL != nil {
			if err := s.fileStorage.DeleteFile(*oldURL); err != nil {
				logger.Warn().Err(err).Str("file", *oldURL).Msg("Failed to delete replaced attachment")
			}
		}
	}

	if err := s.projectStore.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject removes the actor's project and its stored attachment.
// Contribution notes are left in place with their project reference.
func (s *ProjectService) DeleteProject(ctx context.Context, id, actorID int64) error {
	project, err := s.projectStore.GetByIDForOwner(ctx, id, actorID)
	if err != nil {
		return err
	}

	if err := s.projectStore.DeleteForOwner(ctx, id, actorID); err != nil {
		return err
	}

	if project.AttachmentURL != nil {
		if err := s.fileStorage.DeleteFile(*project.AttachmentURL); err != nil {
			logger.Warn().Err(err).Str("file", *project.AttachmentURL).Msg("Failed to delete project attachment")
		}
	}

	return nil
}

// CreateContribution records a contribution note against the actor's
// project for an existing student.
func (s *ProjectService) CreateContribution(ctx context.Context, projectID, actorID int64, req *dto.CreateContributionRequest) (*models.Contribution, error) {
	if _, err := s.projectStore.GetByIDForOwner(ctx, projectID, actorID); err != nil {
		return nil, err
	}

	exists, err := s.studentChecker.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date")
	}

	contribution := &models.Contribution{
		ProjectID:  projectID,
		StudentID:  req.StudentID,
		Date:       date,
		Note:       req.Note,
		RecordedBy: actorID,
	}

	if err := s.contributionStore.Create(ctx, contribution); err != nil {
		return nil, err
	}

	return contribution, nil
}

// GetContributions lists a project's contribution notes, newest first, with
// student name and roll number joined in.
func (s *ProjectService) GetContributions(ctx context.Context, projectID, actorID int64) ([]*models.Contribution, error) {
	if _, err := s.projectStore.GetByIDForOwner(ctx, projectID, actorID); err != nil {
		return nil, err
	}

	return s.contributionStore.GetByProjectID(ctx, projectID)
}
