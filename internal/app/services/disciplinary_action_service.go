package services

import (
	"context"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/helpers"
)

// DisciplinaryActionService handles disciplinary incident records.
type DisciplinaryActionService struct {
	actionRepo  *repositories.DisciplinaryActionRepository
	studentRepo *repositories.StudentRepository
}

// NewDisciplinaryActionService creates a new disciplinary action service.
func NewDisciplinaryActionService(actionRepo *repositories.DisciplinaryActionRepository, studentRepo *repositories.StudentRepository) *DisciplinaryActionService {
	return &DisciplinaryActionService{actionRepo: actionRepo, studentRepo: studentRepo}
}

// CreateDisciplinaryAction records an incident for an existing student.
func (s *DisciplinaryActionService) CreateDisciplinaryAction(ctx context.Context, actorID int64, req *dto.CreateDisciplinaryActionRequest) (*models.DisciplinaryAction, error) {
	exists, err := s.studentRepo.Exists(ctx, req.StudentID)
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

	action := &models.DisciplinaryAction{
		StudentID:   req.StudentID,
		Date:        date,
		Incident:    req.Incident,
		ActionTaken: req.ActionTaken,
		RecordedBy:  actorID,
	}

	if err := s.actionRepo.Create(ctx, action); err != nil {
		return nil, err
	}

	return action, nil
}

// GetDisciplinaryActionByID retrieves a record.
func (s *DisciplinaryActionService) GetDisciplinaryActionByID(ctx context.Context, id int64) (*models.DisciplinaryAction, error) {
	return s.actionRepo.GetByID(ctx, id)
}

// GetAllDisciplinaryActions lists records, optionally limited to one
// student, most recent incident first.
func (s *DisciplinaryActionService) GetAllDisciplinaryActions(ctx context.Context, studentID int64) ([]*models.DisciplinaryAction, error) {
	return s.actionRepo.GetAll(ctx, studentID)
}

// UpdateDisciplinaryAction applies the present fields of the request to an
// existing record.
func (s *DisciplinaryActionService) UpdateDisciplinaryAction(ctx context.Context, id int64, req *dto.UpdateDisciplinaryActionRequest) (*models.DisciplinaryAction, error) {
	action, err := s.actionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StudentID != nil {
		exists, err := s.studentRepo.Exists(ctx, *req.StudentID)
		if err != nil {
			return nil, fmt.Errorf("error checking student: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrStudentNotFound
		}
		action.StudentID = *req.StudentID
	}
	if req.Date != nil {
		date, err := helpers.ParseDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid date")
		}
		action.Date = date
	}
	if req.Incident != nil {
		action.Incident = *req.Incident
	}
	if req.ActionTaken != nil {
		action.ActionTaken = *req.ActionTaken
	}

	if err := s.actionRepo.Update(ctx, action); err != nil {
		return nil, err
	}

	return action, nil
}

// DeleteDisciplinaryAction removes a record.
func (s *DisciplinaryActionService) DeleteDisciplinaryAction(ctx context.Context, id int64) error {
	return s.actionRepo.Delete(ctx, id)
}
