package services

import (
	"context"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/helpers"
	"github.com/evren/schoolhub/internal/pkg/validation"
)

// EventStore is the persistence surface the event service needs.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context, category string) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// ParticipantStore is the persistence surface for event membership.
type ParticipantStore interface {
	Add(ctx context.Context, eventID, studentID int64) (bool, error)
	Remove(ctx context.Context, eventID, studentID int64) error
	GetByEventID(ctx context.Context, eventID int64) ([]*models.EventParticipant, error)
	CountByEventID(ctx context.Context, eventID int64) (int, error)
}

// StudentChecker verifies student existence for cross-entity references.
type StudentChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// EventService handles school events and their participant sets.
type EventService struct {
	eventStore       EventStore
	participantStore ParticipantStore
	studentChecker   StudentChecker
}

// NewEventService creates a new event service.
func NewEventService(eventStore EventStore, participantStore ParticipantStore, studentChecker StudentChecker) *EventService {
	return &EventService{
		eventStore:       eventStore,
		participantStore: participantStore,
		studentChecker:   studentChecker,
	}
}

// CreateEvent creates an event owned by the acting staff member.
func (s *EventService) CreateEvent(ctx context.Context, actorID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	if !validation.OneOf(req.Category, models.EventCategories...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid event category: %s", req.Category))
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid startDate")
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid endDate")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	event := &models.Event{
		Title:     req.Title,
		Category:  req.Category,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: actorID,
	}

	if err := s.eventStore.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetEventByID retrieves an event along with its participant count.
func (s *EventService) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.eventStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.participantStore.CountByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.ParticipantCount = count

	return event, nil
}

// GetAllEvents lists events newest first, optionally filtered by category.
func (s *EventService) GetAllEvents(ctx context.Context, category string) ([]*models.Event, error) {
	if category != "" && !validation.OneOf(category, models.EventCategories...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid event category: %s", category))
	}
	return s.eventStore.GetAll(ctx, category)
}

// UpdateEvent applies the present fields of the request to an existing
// event. Absent fields keep their stored values.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Category != nil {
		if !validation.OneOf(*req.Category, models.EventCategories...) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid event category: %s", *req.Category))
		}
		event.Category = *req.Category
	}
	startDate, err := helpers.ParseOptionalDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid startDate")
	}
	if startDate != nil {
		event.StartDate = *startDate
	}
	endDate, err := helpers.ParseOptionalDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid endDate")
	}
	if endDate != nil {
		event.EndDate = *endDate
	}
	if event.EndDate.Before(event.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	if err := s.eventStore.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes an event; participant rows go with it.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventStore.Delete(ctx, id)
}

// AddParticipant adds a student to an event's participant set. Adding an
// existing participant is a no-op; the returned flag reports whether the
// set actually grew.
func (s *EventService) AddParticipant(ctx context.Context, eventID, studentID int64) (bool, error) {
	if _, err := s.eventStore.GetByID(ctx, eventID); err != nil {
		return false, err
	}

	exists, err := s.studentChecker.Exists(ctx, studentID)
	if err != nil {
		return false, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return false, apperrors.ErrStudentNotFound
	}

	return s.participantStore.Add(ctx, eventID, studentID)
}

// RemoveParticipant removes a student from an event's participant set.
// Removing an absent student is a no-op.
func (s *EventService) RemoveParticipant(ctx context.Context, eventID, studentID int64) error {
	if _, err := s.eventStore.GetByID(ctx, eventID); err != nil {
		return err
	}

	return s.participantStore.Remove(ctx, eventID, studentID)
}

// GetParticipants lists an event's participants in insertion order with
// student details joined in.
func (s *EventService) GetParticipants(ctx context.Context, eventID int64) ([]*models.EventParticipant, error) {
	if _, err := s.eventStore.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	return s.participantStore.GetByEventID(ctx, eventID)
}
