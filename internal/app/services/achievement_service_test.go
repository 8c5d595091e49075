package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
)

type fakeAchievementStore struct {
	records map[int64]*models.Achievement
	nextID  int64
}

func newFakeAchievementStore() *fakeAchievementStore {
	return &fakeAchievementStore{records: make(map[int64]*models.Achievement), nextID: 1}
}

func (f *fakeAchievementStore) Create(_ context.Context, a *models.Achievement) error {
	a.ID = f.nextID
	f.nextID++
	copied := *a
	f.records[a.ID] = &copied
	return nil
}

func (f *fakeAchievementStore) GetByID(_ context.Context, id int64) (*models.Achievement, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrAchievementNotFound
	}
	copied := *a
	// Mirror the SQL join that resolves the student name on read.
	copied.StudentName = fmt.Sprintf("Student %d", a.StudentID)
	return &copied, nil
}

func (f *fakeAchievementStore) GetAll(_ context.Context, studentID int64) ([]*models.Achievement, error) {
	out := make([]*models.Achievement, 0)
	for _, a := range f.records {
		if studentID == 0 || a.StudentID == studentID {
			copied := *a
			copied.StudentName = fmt.Sprintf("Student %d", a.StudentID)
			out = append(out, &copied)
		}
	}
	return out, nil
}

func newAchievementTestService(studentIDs ...int64) *AchievementService {
	known := make(map[int64]bool)
	for _, id := range studentIDs {
		known[id] = true
	}
	return NewAchievementService(newFakeAchievementStore(), &fakeStudentChecker{known: known})
}

func validAchievementRequest(studentID int64) dto.CreateAchievementRequest {
	return dto.CreateAchievementRequest{
		StudentID: studentID,
		Title:     "District chess champion",
		Date:      "2026-01-15",
		Category:  "Sports",
		Level:     "District",
		Position:  "1st",
	}
}

func TestCreateAchievementResolvesStudentName(t *testing.T) {
	svc := newAchievementTestService(42)

	achievement, err := svc.CreateAchievement(context.Background(), 5, func() *dto.CreateAchievementRequest {
		req := validAchievementRequest(42)
		return &req
	}())
	if err != nil {
		t.Fatalf("CreateAchievement() error: %v", err)
	}

	if achievement.StudentName == "" {
		t.Errorf("StudentName not resolved in create response")
	}
	if achievement.RecordedBy != 5 {
		t.Errorf("RecordedBy = %d, want 5", achievement.RecordedBy)
	}
}

func TestCreateAchievementValidation(t *testing.T) {
	svc := newAchievementTestService(42)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*dto.CreateAchievementRequest)
		wantErr error
	}{
		{"unknown category", func(r *dto.CreateAchievementRequest) { r.Category = "Cooking" }, apperrors.ErrValidationFailed},
		{"unknown level", func(r *dto.CreateAchievementRequest) { r.Level = "Galactic" }, apperrors.ErrValidationFailed},
		{"bad date", func(r *dto.CreateAchievementRequest) { r.Date = "15-01-2026" }, apperrors.ErrValidationFailed},
		{"missing student", func(r *dto.CreateAchievementRequest) { r.StudentID = 7 }, apperrors.ErrStudentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAchievementRequest(42)
			tt.mutate(&req)
			if _, err := svc.CreateAchievement(ctx, 1, &req); !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateAchievement() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetAllAchievementsStudentFilter(t *testing.T) {
	svc := newAchievementTestService(1, 2)
	ctx := context.Background()

	for _, studentID := range []int64{1, 1, 2} {
		req := validAchievementRequest(studentID)
		if _, err := svc.CreateAchievement(ctx, 9, &req); err != nil {
			t.Fatalf("CreateAchievement() error: %v", err)
		}
	}

	all, err := svc.GetAllAchievements(ctx, 0)
	if err != nil {
		t.Fatalf("GetAllAchievements() error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered count = %d, want 3", len(all))
	}

	filtered, err := svc.GetAllAchievements(ctx, 1)
	if err != nil {
		t.Fatalf("GetAllAchievements(studentID=1) error: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered count = %d, want 2", len(filtered))
	}
}
