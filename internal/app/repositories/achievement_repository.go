package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
)

// AchievementRepository handles database operations for achievements.
// Achievements are write-once; there are no update or delete statements here.
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new achievement repository.
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Create inserts an achievement and stamps the generated ID and timestamp.
func (r *AchievementRepository) Create(ctx context.Context, a *models.Achievement) error {
	query := `
		INSERT INTO achievements (student_id, title, description, date, category, level, position, certificate_url, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		a.StudentID, a.Title, a.Description, a.Date, a.Category, a.Level,
		a.Position, a.CertificateURL, a.RecordedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating achievement: %w", err)
	}

	return nil
}

// GetByID retrieves an achievement with the student's name resolved.
func (r *AchievementRepository) GetByID(ctx context.Context, id int64) (*models.Achievement, error) {
	query := `
		SELECT a.id, a.student_id, a.title, a.description, a.date, a.category, a.level,
		       a.position, a.certificate_url, a.recorded_by, a.created_at,
		       s.first_name || ' ' || s.last_name
		FROM achievements a
		JOIN students s ON s.id = a.student_id
		WHERE a.id = $1
	`

	var a models.Achievement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StudentID, &a.Title, &a.Description, &a.Date, &a.Category, &a.Level,
		&a.Position, &a.CertificateURL, &a.RecordedBy, &a.CreatedAt, &a.StudentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("error retrieving achievement: %w", err)
	}

	return &a, nil
}

// GetAll retrieves achievements, optionally filtered by student, newest date
// first.
func (r *AchievementRepository) GetAll(ctx context.Context, studentID int64) ([]*models.Achievement, error) {
	builder := squirrel.Select(
		"a.id", "a.student_id", "a.title", "a.description", "a.date", "a.category", "a.level",
		"a.position", "a.certificate_url", "a.recorded_by", "a.created_at",
		"s.first_name || ' ' || s.last_name",
	).
		From("achievements a").
		Join("students s ON s.id = a.student_id").
		OrderBy("a.date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if studentID > 0 {
		builder = builder.Where(squirrel.Eq{"a.student_id": studentID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing achievements: %w", err)
	}
	defer rows.Close()

	achievements := make([]*models.Achievement, 0)
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.Title, &a.Description, &a.Date, &a.Category, &a.Level,
			&a.Position, &a.CertificateURL, &a.RecordedBy, &a.CreatedAt, &a.StudentName,
		); err != nil {
			return nil, fmt.Errorf("error scanning achievement row: %w", err)
		}
		achievements = append(achievements, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return achievements, nil
}
