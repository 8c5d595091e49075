package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/middleware"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
)

type memAchievementStore struct {
	records map[int64]*models.Achievement
	nextID  int64
}

func (m *memAchievementStore) Create(_ context.Context, a *models.Achievement) error {
	a.ID = m.nextID
	m.nextID++
	a.CreatedAt = time.Now()
	copied := *a
	m.records[a.ID] = &copied
	return nil
}

func (m *memAchievementStore) GetByID(_ context.Context, id int64) (*models.Achievement, error) {
	a, ok := m.records[id]
	if !ok {
		return nil, apperrors.ErrAchievementNotFound
	}
	copied := *a
	copied.StudentName = "Ada Lovelace"
	return &copied, nil
}

// GetAll returns a non-nil slice like the SQL-backed store, so empty
// listings serialize as [] rather than null.
func (m *memAchievementStore) GetAll(_ context.Context, _ int64) ([]*models.Achievement, error) {
	out := make([]*models.Achievement, 0)
	for _, a := range m.records {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

type memStudentChecker struct{ known int64 }

func (m *memStudentChecker) Exists(_ context.Context, id int64) (bool, error) {
	return id == m.known, nil
}

func newAchievementTestRouter(actorID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := &memAchievementStore{records: make(map[int64]*models.Achievement), nextID: 1}
	svc := services.NewAchievementService(store, &memStudentChecker{known: 5})
	ctrl := NewAchievementController(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextStaffID, actorID)
	})
	router.POST("/achievements", ctrl.CreateAchievement)
	router.GET("/achievements", ctrl.GetAllAchievements)
	return router
}

func TestListAchievementsEmptyIsArray(t *testing.T) {
	router := newAchievementTestRouter(9)

	req := httptest.NewRequest(http.MethodGet, "/achievements", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	data, ok := envelope["data"]
	if !ok {
		t.Fatalf("data field missing from empty listing: %s", rec.Body.String())
	}
	if string(data) != "[]" {
		t.Errorf("data = %s, want []", data)
	}
}

func TestCreateAchievementCreatedResponse(t *testing.T) {
	router := newAchievementTestRouter(9)

	body := `{"studentId":5,"title":"Chess champion","date":"2026-01-15","category":"Sports","level":"District","position":"1st"}`
	req := httptest.NewRequest(http.MethodPost, "/achievements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var envelope struct {
		Data      *models.Achievement `json:"data"`
		Timestamp time.Time           `json:"timestamp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data == nil {
		t.Fatal("response data is nil")
	}
	if envelope.Data.StudentID != 5 {
		t.Errorf("studentId = %d, want 5", envelope.Data.StudentID)
	}
	if envelope.Data.StudentName != "Ada Lovelace" {
		t.Errorf("studentName = %q, want resolved name", envelope.Data.StudentName)
	}
	if envelope.Data.RecordedBy != 9 {
		t.Errorf("recordedBy = %d, want actor 9", envelope.Data.RecordedBy)
	}
	if envelope.Timestamp.IsZero() {
		t.Error("timestamp missing from envelope")
	}
}

func TestCreateAchievementUnknownStudentNotFound(t *testing.T) {
	router := newAchievementTestRouter(9)

	body := `{"studentId":77,"title":"X","date":"2026-01-15","category":"Sports","level":"District"}`
	req := httptest.NewRequest(http.MethodPost, "/achievements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCreateAchievementMissingFieldsRejected(t *testing.T) {
	router := newAchievementTestRouter(9)

	req := httptest.NewRequest(http.MethodPost, "/achievements", strings.NewReader(`{"title":"no student"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
