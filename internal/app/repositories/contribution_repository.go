package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evren/schoolhub/internal/app/models"
)

// ContributionRepository handles database operations for project
// contributions. Contributions are write-once and are not cleaned up when
// their project is deleted.
type ContributionRepository struct {
	db *pgxpool.Pool
}

// NewContributionRepository creates a new contribution repository.
func NewContributionRepository(db *pgxpool.Pool) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// Create inserts a contribution and stamps the generated ID and timestamp.
func (r *ContributionRepository) Create(ctx context.Context, c *models.Contribution) error {
	query := `
		INSERT INTO contributions (project_id, student_id, date, note, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		c.ProjectID, c.StudentID, c.Date, c.Note, c.RecordedBy,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating contribution: %w", err)
	}

	return nil
}

// GetByProjectID lists a project's contributions newest first, with the
// student's name and roll number joined in.
func (r *ContributionRepository) GetByProjectID(ctx context.Context, projectID int64) ([]*models.Contribution, error) {
	query := `
		SELECT c.id, c.project_id, c.student_id, c.date, c.note, c.recorded_by, c.created_at,
		       s.first_name || ' ' || s.last_name, s.roll_number
		FROM contributions c
		JOIN students s ON s.id = c.student_id
		WHERE c.project_id = $1
		ORDER BY c.date DESC
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error listing contributions: %w", err)
	}
	defer rows.Close()

	contributions := make([]*models.Contribution, 0)
	for rows.Next() {
		var c models.Contribution
		if err := rows.Scan(
			&c.ID, &c.ProjectID, &c.StudentID, &c.Date, &c.Note, &c.RecordedBy, &c.CreatedAt,
			&c.StudentName, &c.StudentRollNumber,
		); err != nil {
			return nil, fmt.Errorf("error scanning contribution row: %w", err)
		}
		contributions = append(contributions, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contributions, nil
}
