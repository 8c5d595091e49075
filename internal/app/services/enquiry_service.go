package services

import (
	"context"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/validation"
)

// EnquiryStore is the persistence surface the enquiry service needs.
type EnquiryStore interface {
	Create(ctx context.Context, e *models.Enquiry) error
	GetByID(ctx context.Context, id int64) (*models.Enquiry, error)
	GetAll(ctx context.Context, status string) ([]*models.Enquiry, error)
	Update(ctx context.Context, e *models.Enquiry) error
	Delete(ctx context.Context, id int64) error
}

// EnquiryService handles admission and general enquiries.
type EnquiryService struct {
	enquiryStore EnquiryStore
}

// NewEnquiryService creates a new enquiry service.
func NewEnquiryService(enquiryStore EnquiryStore) *EnquiryService {
	return &EnquiryService{enquiryStore: enquiryStore}
}

// CreateEnquiry records an enquiry. Creation is reachable without an account,
// so the content is checked here beyond request binding: whitespace-only
// names and messages are rejected, as are malformed addresses. New enquiries
// start in the New status.
func (s *EnquiryService) CreateEnquiry(ctx context.Context, req *dto.CreateEnquiryRequest) (*models.Enquiry, error) {
	if !validation.NonEmpty(req.Name) {
		return nil, apperrors.NewValidationError("name must not be blank")
	}
	if !validation.NonEmpty(req.Message) {
		return nil, apperrors.NewValidationError("message must not be blank")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid email address: %s", req.Email))
	}

	enquiry := &models.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  "New",
	}

	if err := s.enquiryStore.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	return enquiry, nil
}

// GetEnquiryByID retrieves an enquiry.
func (s *EnquiryService) GetEnquiryByID(ctx context.Context, id int64) (*models.Enquiry, error) {
	return s.enquiryStore.GetByID(ctx, id)
}

// GetAllEnquiries lists enquiries, optionally filtered by status.
func (s *EnquiryService) GetAllEnquiries(ctx context.Context, status string) ([]*models.Enquiry, error) {
	if status != "" && !validation.OneOf(status, models.EnquiryStatuses...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}
	return s.enquiryStore.GetAll(ctx, status)
}

// UpdateEnquiry applies the present fields of the request to an existing
// enquiry.
func (s *EnquiryService) UpdateEnquiry(ctx context.Context, id int64, req *dto.UpdateEnquiryRequest) (*models.Enquiry, error) {
	enquiry, err := s.enquiryStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		enquiry.Name = *req.Name
	}
	if req.Email != nil {
		enquiry.Email = *req.Email
	}
	if req.Phone != nil {
		enquiry.Phone = *req.Phone
	}
	if req.Message != nil {
		enquiry.Message = *req.Message
	}
	if req.Status != nil {
		if !validation.OneOf(*req.Status, models.EnquiryStatuses...) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", *req.Status))
		}
		enquiry.Status = *req.Status
	}

	if err := s.enquiryStore.Update(ctx, enquiry); err != nil {
		return nil, err
	}

	return enquiry, nil
}

// DeleteEnquiry removes an enquiry.
func (s *EnquiryService) DeleteEnquiry(ctx context.Context, id int64) error {
	return s.enquiryStore.Delete(ctx, id)
}
