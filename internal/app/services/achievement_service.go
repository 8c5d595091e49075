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

// AchievementStore is the persistence surface for achievements. Records are
// write-once, so there is no update or delete.
type AchievementStore interface {
	Create(ctx context.Context, a *models.Achievement) error
	GetByID(ctx context.Context, id int64) (*models.Achievement, error)
	GetAll(ctx context.Context, studentID int64) ([]*models.Achievement, error)
}

// AchievementService handles extracurricular achievement records.
type AchievementService struct {
	achievementStore AchievementStore
	studentChecker   StudentChecker
}

// NewAchievementService creates a new achievement service.
func NewAchievementService(achievementStore AchievementStore, studentChecker StudentChecker) *AchievementService {
	return &AchievementService{
		achievementStore: achievementStore,
		studentChecker:   studentChecker,
	}
}

// CreateAchievement records an achievement for an existing student. Category
// and level come from closed sets.
func (s *AchievementService) CreateAchievement(ctx context.Context, actorID int64, req *dto.CreateAchievementRequest) (*models.Achievement, error) {
	if !validation.OneOf(req.Category, models.AchievementCategories...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid achievement category: %s", req.Category))
	}
	if !validation.OneOf(req.Level, models.AchievementLevels...) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid achievement level: %s", req.Level))
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date")
	}

	exists, err := s.studentChecker.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	achievement := &models.Achievement{
		StudentID:      req.StudentID,
		Title:          req.Title,
		Description:    req.Description,
		Date:           date,
		Category:       req.Category,
		Level:          req.Level,
		Position:       req.Position,
		CertificateURL: req.CertificateURL,
		RecordedBy:     actorID,
	}

	if err := s.achievementStore.Create(ctx, achievement); err != nil {
		return nil, err
	}

	// The insert does not resolve the student name; fetch the full record so
	// the response carries it.
	return s.achievementStore.GetByID(ctx, achievement.ID)
}

// GetAchievementByID retrieves an achievement with the student name resolved.
func (s *AchievementService) GetAchievementByID(ctx context.Context, id int64) (*models.Achievement, error) {
	return s.achievementStore.GetByID(ctx, id)
}

// GetAllAchievements lists achievements by date descending, optionally
// limited to one student.
func (s *AchievementService) GetAllAchievements(ctx context.Context, studentID int64) ([]*models.Achievement, error) {
	return s.achievementStore.GetAll(ctx, studentID)
}
