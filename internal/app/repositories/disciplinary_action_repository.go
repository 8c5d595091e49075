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

// DisciplinaryActionRepository handles database operations for disciplinary records.
type DisciplinaryActionRepository struct {
	db *pgxpool.Pool
}

// NewDisciplinaryActionRepository creates a new disciplinary action repository.
func NewDisciplinaryActionRepository(db *pgxpool.Pool) *DisciplinaryActionRepository {
	return &DisciplinaryActionRepository{db: db}
}

// Create inserts a disciplinary action.
func (r *DisciplinaryActionRepository) Create(ctx context.Context, da *models.DisciplinaryAction) error {
	query := `
		INSERT INTO disciplinary_actions (student_id, date, incident, action_taken, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		da.StudentID, da.Date, da.Incident, da.ActionTaken, da.RecordedBy,
	).Scan(&da.ID, &da.CreatedAt, &da.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating disciplinary action: %w", err)
	}

	return nil
}

// GetByID retrieves a disciplinary action by ID.
func (r *DisciplinaryActionRepository) GetByID(ctx context.Context, id int64) (*models.DisciplinaryAction, error) {
	query := `
		SELECT id, student_id, date, incident, action_taken, recorded_by, created_at, updated_at
		FROM disciplinary_actions
		WHERE id = $1
	`

	var da models.DisciplinaryAction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&da.ID, &da.StudentID, &da.Date, &da.Incident,
		&da.ActionTaken, &da.RecordedBy, &da.CreatedAt, &da.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDisciplinaryActionNotFound
		}
		return nil, fmt.Errorf("error retrieving disciplinary action: %w", err)
	}

	return &da, nil
}

// GetAll retrieves disciplinary actions, optionally filtered by student,
// most recent incident first.
func (r *DisciplinaryActionRepository) GetAll(ctx context.Context, studentID int64) ([]*models.DisciplinaryAction, error) {
	builder := squirrel.Select(
		"id", "student_id", "date", "incident", "action_taken", "recorded_by", "created_at", "updated_at",
	).
		From("disciplinary_actions").
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if studentID > 0 {
		builder = builder.Where(squirrel.Eq{"student_id": studentID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing disciplinary actions: %w", err)
	}
	defer rows.Close()

	actions := make([]*models.DisciplinaryAction, 0)
	for rows.Next() {
		var da models.DisciplinaryAction
		if err := rows.Scan(
			&da.ID, &da.StudentID, &da.Date, &da.Incident,
			&da.ActionTaken, &da.RecordedBy, &da.CreatedAt, &da.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning disciplinary action row: %w", err)
		}
		actions = append(actions, &da)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}

// Update overwrites a disciplinary action's mutable columns.
func (r *DisciplinaryActionRepository) Update(ctx context.Context, da *models.DisciplinaryAction) error {
	query := `
		UPDATE disciplinary_actions
		SET student_id = $1, date = $2, incident = $3, action_taken = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, da.StudentID, da.Date, da.Incident, da.ActionTaken, da.ID)
	if err != nil {
		return fmt.Errorf("error updating disciplinary action: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDisciplinaryActionNotFound
	}

	return nil
}

// Delete removes a disciplinary action by ID.
func (r *DisciplinaryActionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM disciplinary_actions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting disciplinary action: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDisciplinaryActionNotFound
	}

	return nil
}
