package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
)

type fakeEventStore struct {
	events map[int64]*models.Event
	nextID int64
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[int64]*models.Event), nextID: 1}
}

func (f *fakeEventStore) Create(_ context.Context, event *models.Event) error {
	event.ID = f.nextID
	f.nextID++
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventStore) GetAll(_ context.Context, category string) ([]*models.Event, error) {
	out := make([]*models.Event, 0)
	for _, event := range f.events {
		if category == "" || event.Category == category {
			copied := *event
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeEventStore) Update(_ context.Context, event *models.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeEventStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

type participantKey struct {
	eventID   int64
	studentID int64
}

type fakeParticipantStore struct {
	members map[participantKey]int64 // insertion sequence
	nextSeq int64
}

func newFakeParticipantStore() *fakeParticipantStore {
	return &fakeParticipantStore{members: make(map[participantKey]int64), nextSeq: 1}
}

func (f *fakeParticipantStore) Add(_ context.Context, eventID, studentID int64) (bool, error) {
	key := participantKey{eventID, studentID}
	if _, ok := f.members[key]; ok {
		return false, nil
	}
	f.members[key] = f.nextSeq
	f.nextSeq++
	return true, nil
}

func (f *fakeParticipantStore) Remove(_ context.Context, eventID, studentID int64) error {
	delete(f.members, participantKey{eventID, studentID})
	return nil
}

func (f *fakeParticipantStore) GetByEventID(_ context.Context, eventID int64) ([]*models.EventParticipant, error) {
	out := make([]*models.EventParticipant, 0)
	for key, seq := range f.members {
		if key.eventID == eventID {
			out = append(out, &models.EventParticipant{
				ID:        seq,
				EventID:   key.eventID,
				StudentID: key.studentID,
			})
		}
	}
	return out, nil
}

func (f *fakeParticipantStore) CountByEventID(_ context.Context, eventID int64) (int, error) {
	count := 0
	for key := range f.members {
		if key.eventID == eventID {
			count++
		}
	}
	return count, nil
}

type fakeStudentChecker struct {
	known map[int64]bool
}

func (f *fakeStudentChecker) Exists(_ context.Context, id int64) (bool, error) {
	return f.known[id], nil
}

func newEventTestService(studentIDs ...int64) (*EventService, *fakeEventStore, *fakeParticipantStore) {
	known := make(map[int64]bool)
	for _, id := range studentIDs {
		known[id] = true
	}
	events := newFakeEventStore()
	participants := newFakeParticipantStore()
	svc := NewEventService(events, participants, &fakeStudentChecker{known: known})
	return svc, events, participants
}

func TestCreateEventValidation(t *testing.T) {
	svc, _, _ := newEventTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.CreateEventRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  dto.CreateEventRequest{Title: "Chess club", Category: "club", StartDate: "2026-02-01", EndDate: "2026-02-01"},
		},
		{
			name:    "unknown category",
			req:     dto.CreateEventRequest{Title: "X", Category: "party", StartDate: "2026-02-01", EndDate: "2026-02-02"},
			wantErr: true,
		},
		{
			name:    "end before start",
			req:     dto.CreateEventRequest{Title: "X", Category: "cultural", StartDate: "2026-02-02", EndDate: "2026-02-01"},
			wantErr: true,
		},
		{
			name:    "bad date",
			req:     dto.CreateEventRequest{Title: "X", Category: "cultural", StartDate: "02/01/2026", EndDate: "2026-02-02"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := svc.CreateEvent(ctx, 7, &tt.req)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Errorf("CreateEvent() error = %v, want validation failure", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateEvent() unexpected error: %v", err)
			}
			if event.CreatedBy != 7 {
				t.Errorf("CreatedBy = %d, want 7", event.CreatedBy)
			}
		})
	}
}

func TestUpdateEventShallowMerge(t *testing.T) {
	svc, _, _ := newEventTestService()
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, 1, &dto.CreateEventRequest{
		Title: "Science fair", Category: "competition", StartDate: "2026-03-10", EndDate: "2026-03-12",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	newTitle := "Regional science fair"
	updated, err := svc.UpdateEvent(ctx, created.ID, &dto.UpdateEventRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateEvent() error: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("Title = %q, want %q", updated.Title, newTitle)
	}
	if updated.Category != "competition" {
		t.Errorf("Category = %q, want untouched %q", updated.Category, "competition")
	}
	if !updated.StartDate.Equal(created.StartDate) {
		t.Errorf("StartDate changed on a title-only update")
	}
}

func TestUpdateEventInvertedDatesRejected(t *testing.T) {
	svc, _, _ := newEventTestService()
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, 1, &dto.CreateEventRequest{
		Title: "Annual day", Category: "cultural", StartDate: "2026-04-01", EndDate: "2026-04-03",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	badEnd := "2026-03-30"
	if _, err := svc.UpdateEvent(ctx, created.ID, &dto.UpdateEventRequest{EndDate: &badEnd}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateEvent() error = %v, want validation failure", err)
	}

	garbled := "30/03/2026"
	if _, err := svc.UpdateEvent(ctx, created.ID, &dto.UpdateEventRequest{StartDate: &garbled}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateEvent(bad date) error = %v, want validation failure", err)
	}
}

func TestAddParticipantIdempotent(t *testing.T) {
	svc, _, _ := newEventTestService(42)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, 1, &dto.CreateEventRequest{
		Title: "Debate", Category: "club", StartDate: "2026-05-01", EndDate: "2026-05-01",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	added, err := svc.AddParticipant(ctx, event.ID, 42)
	if err != nil {
		t.Fatalf("AddParticipant() error: %v", err)
	}
	if !added {
		t.Errorf("first AddParticipant() added = false, want true")
	}

	added, err = svc.AddParticipant(ctx, event.ID, 42)
	if err != nil {
		t.Fatalf("second AddParticipant() error: %v", err)
	}
	if added {
		t.Errorf("second AddParticipant() added = true, want false")
	}

	participants, err := svc.GetParticipants(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetParticipants() error: %v", err)
	}
	if len(participants) != 1 {
		t.Errorf("participant count = %d, want 1", len(participants))
	}

	fetched, err := svc.GetEventByID(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEventByID() error: %v", err)
	}
	if fetched.ParticipantCount != 1 {
		t.Errorf("ParticipantCount = %d, want 1", fetched.ParticipantCount)
	}
}

func TestAddParticipantChecksReferences(t *testing.T) {
	svc, _, _ := newEventTestService(42)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, 1, &dto.CreateEventRequest{
		Title: "Debate", Category: "club", StartDate: "2026-05-01", EndDate: "2026-05-01",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	if _, err := svc.AddParticipant(ctx, 999, 42); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("AddParticipant(missing event) error = %v, want %v", err, apperrors.ErrEventNotFound)
	}
	if _, err := svc.AddParticipant(ctx, event.ID, 999); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("AddParticipant(missing student) error = %v, want %v", err, apperrors.ErrStudentNotFound)
	}
}

func TestRemoveParticipantAbsentIsNoop(t *testing.T) {
	svc, _, participants := newEventTestService(42)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, 1, &dto.CreateEventRequest{
		Title: "Debate", Category: "club", StartDate: "2026-05-01", EndDate: "2026-05-01",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	if _, err := svc.AddParticipant(ctx, event.ID, 42); err != nil {
		t.Fatalf("AddParticipant() error: %v", err)
	}

	// Removing a student who never joined must not fail or disturb the set.
	if err := svc.RemoveParticipant(ctx, event.ID, 7); err != nil {
		t.Errorf("RemoveParticipant(absent) error = %v, want nil", err)
	}
	if len(participants.members) != 1 {
		t.Errorf("participant count = %d, want 1", len(participants.members))
	}

	if err := svc.RemoveParticipant(ctx, event.ID, 42); err != nil {
		t.Errorf("RemoveParticipant() error = %v", err)
	}
	if len(participants.members) != 0 {
		t.Errorf("participant count = %d, want 0", len(participants.members))
	}
}

func TestGetAllEventsRejectsUnknownCategoryFilter(t *testing.T) {
	svc, _, _ := newEventTestService()

	if _, err := svc.GetAllEvents(context.Background(), "carnival"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("GetAllEvents() error = %v, want validation failure", err)
	}
}
