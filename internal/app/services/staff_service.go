package services

import (
	"context"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/auth"
	"github.com/evren/schoolhub/internal/pkg/validation"
)

// StaffService handles staff account management.
type StaffService struct {
	staffRepo *repositories.StaffRepository
}

// NewStaffService creates a new staff service.
func NewStaffService(staffRepo *repositories.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// CreateStaff creates a staff account with a hashed password.
func (s *StaffService) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*models.Staff, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid email address: %s", req.Email))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	staff := &models.Staff{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.StaffRole(req.Role),
		IsActive:     true,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetStaffByID retrieves a staff account.
func (s *StaffService) GetStaffByID(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// GetAllStaff lists all staff accounts.
func (s *StaffService) GetAllStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.staffRepo.GetAll(ctx)
}

// UpdateStaff applies the present fields of the request to an existing
// account. A present password is re-hashed.
func (s *StaffService) UpdateStaff(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if !validation.IsValidEmail(*req.Email) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid email address: %s", *req.Email))
		}
		staff.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		staff.PasswordHash = hash
	}
	if req.FirstName != nil {
		staff.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		staff.LastName = *req.LastName
	}
	if req.Role != nil {
		staff.Role = models.StaffRole(*req.Role)
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// DeleteStaff removes a staff account.
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	return s.staffRepo.Delete(ctx, id)
}
