package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/helpers"
	"github.com/evren/schoolhub/internal/pkg/validation"
)

// LeaveRequestService handles staff leave requests.
type LeaveRequestService struct {
	leaveRepo *repositories.LeaveRequestRepository
	staffRepo *repositories.StaffRepository
}

// NewLeaveRequestService creates a new leave request service.
func NewLeaveRequestService(leaveRepo *repositories.LeaveRequestRepository, staffRepo *repositories.StaffRepository) *LeaveRequestService {
	return &LeaveRequestService{leaveRepo: leaveRepo, staffRepo: staffRepo}
}

// CreateLeaveRequest files a leave request for an existing staff member.
// New requests start Pending.
func (s *LeaveRequestService) CreateLeaveRequest(ctx context.Context, req *dto.CreateLeaveRequestRequest) (*models.LeaveRequest, error) {
	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error checking staff: %w", err)
	}

	fromDate, err := helpers.ParseDate(req.FromDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid fromDate")
	}
	toDate, err := helpers.ParseDate(req.ToDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid toDate")
	}
	if toDate.Before(fromDate) {
		return nil, apperrors.NewValidationError("toDate must not be before fromDate")
	}

	lr := &models.LeaveRequest{
		StaffID:  req.StaffID,
		FromDate: fromDate,
		ToDate:   toDate,
		Reason:   req.Reason,
		Status:   models.ApprovalStatusPending,
	}

	if err := s.leaveRepo.Create(ctx, lr); err != nil {
		return nil, err
	}

	return lr, nil
}

// GetLeaveRequestByID retrieves a leave request.
func (s *LeaveRequestService) GetLeaveRequestByID(ctx context.Context, id int64) (*models.LeaveRequest, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

// GetAllLeaveRequests lists requests, optionally filtered by staff member
// or status.
func (s *LeaveRequestService) GetAllLeaveRequests(ctx context.Context, staffID int64, status string) ([]*models.LeaveRequest, error) {
	if status != "" && !validation.OneOf(status, models.ApprovalStatuses...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}
	return s.leaveRepo.GetAll(ctx, staffID, status)
}

// UpdateLeaveRequest applies the present fields of the request to an
// existing leave request.
func (s *LeaveRequestService) UpdateLeaveRequest(ctx context.Context, id int64, req *dto.UpdateLeaveRequestRequest) (*models.LeaveRequest, error) {
	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FromDate != nil {
		fromDate, err := helpers.ParseDate(*req.FromDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid fromDate")
		}
		lr.FromDate = fromDate
	}
	if req.ToDate != nil {
		toDate, err := helpers.ParseDate(*req.ToDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid toDate")
		}
		lr.ToDate = toDate
	}
	if lr.ToDate.Before(lr.FromDate) {
		return nil, apperrors.NewValidationError("toDate must not be before fromDate")
	}
	if req.Reason != nil {
		lr.Reason = *req.Reason
	}
	if req.Status != nil {
		if !validation.OneOf(*req.Status, models.ApprovalStatuses...) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", *req.Status))
		}
		lr.Status = *req.Status
	}

	if err := s.leaveRepo.Update(ctx, lr); err != nil {
		return nil, err
	}

	return lr, nil
}

// DeleteLeaveRequest removes a leave request.
func (s *LeaveRequestService) DeleteLeaveRequest(ctx context.Context, id int64) error {
	return s.leaveRepo.Delete(ctx, id)
}
