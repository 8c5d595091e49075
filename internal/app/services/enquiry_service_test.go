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

type fakeEnquiryStore struct {
	enquiries map[int64]*models.Enquiry
	nextID    int64
}

func newFakeEnquiryStore() *fakeEnquiryStore {
	return &fakeEnquiryStore{enquiries: make(map[int64]*models.Enquiry), nextID: 1}
}

func (f *fakeEnquiryStore) Create(_ context.Context, e *models.Enquiry) error {
	e.ID = f.nextID
	f.nextID++
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	copied := *e
	f.enquiries[e.ID] = &copied
	return nil
}

func (f *fakeEnquiryStore) GetByID(_ context.Context, id int64) (*models.Enquiry, error) {
	e, ok := f.enquiries[id]
	if !ok {
		return nil, apperrors.ErrEnquiryNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEnquiryStore) GetAll(_ context.Context, status string) ([]*models.Enquiry, error) {
	out := make([]*models.Enquiry, 0)
	for _, e := range f.enquiries {
		if status == "" || e.Status == status {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeEnquiryStore) Update(_ context.Context, e *models.Enquiry) error {
	if _, ok := f.enquiries[e.ID]; !ok {
		return apperrors.ErrEnquiryNotFound
	}
	copied := *e
	f.enquiries[e.ID] = &copied
	return nil
}

func (f *fakeEnquiryStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.enquiries[id]; !ok {
		return apperrors.ErrEnquiryNotFound
	}
	delete(f.enquiries, id)
	return nil
}

func TestCreateEnquiryStartsNew(t *testing.T) {
	svc := NewEnquiryService(newFakeEnquiryStore())

	enquiry, err := svc.CreateEnquiry(context.Background(), &dto.CreateEnquiryRequest{
		Name:    "Priya Sharma",
		Email:   "priya@example.com",
		Phone:   "+91 98000 00000",
		Message: "Looking for grade 6 admission details.",
	})
	if err != nil {
		t.Fatalf("CreateEnquiry() error: %v", err)
	}
	if enquiry.Status != "New" {
		t.Errorf("Status = %q, want %q", enquiry.Status, "New")
	}
	if enquiry.ID == 0 {
		t.Error("ID not assigned on create")
	}
}

// Enquiry creation is open to the public website, so the service rejects
// content that slips past binding: whitespace-only fields and malformed
// addresses.
func TestCreateEnquiryContentValidation(t *testing.T) {
	svc := NewEnquiryService(newFakeEnquiryStore())
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateEnquiryRequest
	}{
		{
			name: "blank name",
			req:  dto.CreateEnquiryRequest{Name: "   ", Email: "a@b.com", Message: "hello"},
		},
		{
			name: "blank message",
			req:  dto.CreateEnquiryRequest{Name: "A", Email: "a@b.com", Message: "\t\n"},
		},
		{
			name: "malformed email",
			req:  dto.CreateEnquiryRequest{Name: "A", Email: "not-an-address", Message: "hello"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateEnquiry(ctx, &tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateEnquiry() error = %v, want validation failure", err)
			}
		})
	}
}

func TestUpdateEnquiryStatusTransition(t *testing.T) {
	svc := NewEnquiryService(newFakeEnquiryStore())
	ctx := context.Background()

	created, err := svc.CreateEnquiry(ctx, &dto.CreateEnquiryRequest{
		Name: "A", Email: "a@b.com", Message: "hello",
	})
	if err != nil {
		t.Fatalf("CreateEnquiry() error: %v", err)
	}

	closed := "Closed"
	updated, err := svc.UpdateEnquiry(ctx, created.ID, &dto.UpdateEnquiryRequest{Status: &closed})
	if err != nil {
		t.Fatalf("UpdateEnquiry() error: %v", err)
	}
	if updated.Status != "Closed" {
		t.Errorf("Status = %q, want %q", updated.Status, "Closed")
	}

	bogus := "Resolved"
	if _, err := svc.UpdateEnquiry(ctx, created.ID, &dto.UpdateEnquiryRequest{Status: &bogus}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateEnquiry(unknown status) error = %v, want validation failure", err)
	}
}
