package services

import (
	"context"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/helpers"
	"github.com/evren/schoolhub/internal/pkg/validation"
)

// TransportFormService handles transport seat requests.
type TransportFormService struct {
	formRepo    *repositories.TransportFormRepository
	studentRepo *repositories.StudentRepository
}

// NewTransportFormService creates a new transport form service.
func NewTransportFormService(formRepo *repositories.TransportFormRepository, studentRepo *repositories.StudentRepository) *TransportFormService {
	return &TransportFormService{formRepo: formRepo, studentRepo: studentRepo}
}

// CreateTransportForm files a request for an existing student. New forms
// start Pending.
func (s *TransportFormService) CreateTransportForm(ctx context.Context, req *dto.CreateTransportFormRequest) (*models.TransportForm, error) {
	exists, err := s.studentRepo.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid startDate")
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid endDate")
	}

	form := &models.TransportForm{
		StudentID:   req.StudentID,
		Route:       req.Route,
		PickupPoint: req.PickupPoint,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      models.ApprovalStatusPending,
	}

	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

// GetTransportFormByID retrieves a form.
func (s *TransportFormService) GetTransportFormByID(ctx context.Context, id int64) (*models.TransportForm, error) {
	return s.formRepo.GetByID(ctx, id)
}

// GetAllTransportForms lists forms, optionally filtered by student or status.
func (s *TransportFormService) GetAllTransportForms(ctx context.Context, studentID int64, status string) ([]*models.TransportForm, error) {
	if status != "" && !validation.OneOf(status, models.ApprovalStatuses...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}
	return s.formRepo.GetAll(ctx, studentID, status)
}

// UpdateTransportForm applies the present fields of the request to an
// existing form.
func (s *TransportFormService) UpdateTransportForm(ctx context.Context, id int64, req *dto.UpdateTransportFormRequest) (*models.TransportForm, error) {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Route != nil {
		form.Route = *req.Route
	}
	if req.PickupPoint != nil {
		form.PickupPoint = *req.PickupPoint
	}
	startDate, err := helpers.ParseOptionalDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid startDate")
	}
	if startDate != nil {
		form.StartDate = *startDate
	}
	endDate, err := helpers.ParseOptionalDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid endDate")
	}
	if endDate != nil {
		form.EndDate = *endDate
	}
	if req.Status != nil {
		if !validation.OneOf(*req.Status, models.ApprovalStatuses...) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", *req.Status))
		}
		form.Status = *req.Status
	}

	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

// DeleteTransportForm removes a form.
func (s *TransportFormService) DeleteTransportForm(ctx context.Context, id int64) error {
	return s.formRepo.Delete(ctx, id)
}
