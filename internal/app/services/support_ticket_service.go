package services

import (
	"context"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/validation"
)

// SupportTicketService handles IT support requests.
type SupportTicketService struct {
	ticketRepo *repositories.SupportTicketRepository
}

// NewSupportTicketService creates a new support ticket service.
func NewSupportTicketService(ticketRepo *repositories.SupportTicketRepository) *SupportTicketService {
	return &SupportTicketService{ticketRepo: ticketRepo}
}

// CreateSupportTicket opens a ticket for the acting staff member. New
// tickets start Open.
func (s *SupportTicketService) CreateSupportTicket(ctx context.Context, actorID int64, req *dto.CreateSupportTicketRequest) (*models.SupportTicket, error) {
	if !validation.OneOf(req.Category, models.TicketCategories...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid ticket category: %s", req.Category))
	}

	ticket := &models.SupportTicket{
		ReportedBy:  actorID,
		Category:    req.Category,
		Description: req.Description,
		Status:      "Open",
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// GetSupportTicketByID retrieves a ticket.
func (s *SupportTicketService) GetSupportTicketByID(ctx context.Context, id int64) (*models.SupportTicket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}

// GetAllSupportTickets lists tickets, optionally filtered by status or
// category.
func (s *SupportTicketService) GetAllSupportTickets(ctx context.Context, status, category string) ([]*models.SupportTicket, error) {
	if status != "" && !validation.OneOf(status, models.TicketStatuses...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}
	if category != "" && !validation.OneOf(category, models.TicketCategories...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid ticket category: %s", category))
	}
	return s.ticketRepo.GetAll(ctx, status, category)
}

// UpdateSupportTicket applies the present fields of the request to an
// existing ticket.
func (s *SupportTicketService) UpdateSupportTicket(ctx context.Context, id int64, req *dto.UpdateSupportTicketRequest) (*models.SupportTicket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if !validation.OneOf(*req.Category, models.TicketCategories...) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid ticket category: %s", *req.Category))
		}
		ticket.Category = *req.Category
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Status != nil {
		if !validation.OneOf(*req.Status, models.TicketStatuses...) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", *req.Status))
		}
		ticket.Status = *req.Status
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// DeleteSupportTicket removes a ticket.
func (s *SupportTicketService) DeleteSupportTicket(ctx context.Context, id int64) error {
	return s.ticketRepo.Delete(ctx, id)
}
