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

// TransportFormRepository handles database operations for transport forms.
type TransportFormRepository struct {
	db *pgxpool.Pool
}

// NewTransportFormRepository creates a new transport form repository.
func NewTransportFormRepository(db *pgxpool.Pool) *TransportFormRepository {
	return &TransportFormRepository{db: db}
}

// Create inserts a transport form.
func (r *TransportFormRepository) Create(ctx context.Context, f *models.TransportForm) error {
	query := `
		INSERT INTO transport_forms (student_id, route, pickup_point, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		f.StudentID, f.Route, f.PickupPoint, f.StartDate, f.EndDate, f.Status,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating transport form: %w", err)
	}

	return nil
}

// GetByID retrieves a transport form by ID.
func (r *TransportFormRepository) GetByID(ctx context.Context, id int64) (*models.TransportForm, error) {
	query := `
		SELECT id, student_id, route, pickup_point, start_date, end_date, status, created_at, updated_at
		FROM transport_forms
		WHERE id = $1
	`

	var f models.TransportForm
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.StudentID, &f.Route, &f.PickupPoint, &f.StartDate, &f.EndDate,
		&f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransportFormNotFound
		}
		return nil, fmt.Errorf("error retrieving transport form: %w", err)
	}

	return &f, nil
}

// GetAll retrieves transport forms, optionally filtered by student or status,
// newest first.
func (r *TransportFormRepository) GetAll(ctx context.Context, studentID int64, status string) ([]*models.TransportForm, error) {
	builder := squirrel.Select(
		"id", "student_id", "route", "pickup_point", "start_date", "end_date", "status", "created_at", "updated_at",
	).
		From("transport_forms").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if studentID > 0 {
		builder = builder.Where(squirrel.Eq{"student_id": studentID})
	}
	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing transport forms: %w", err)
	}
	defer rows.Close()

	forms := make([]*models.TransportForm, 0)
	for rows.Next() {
		var f models.TransportForm
		if err := rows.Scan(
			&f.ID, &f.StudentID, &f.Route, &f.PickupPoint, &f.StartDate, &f.EndDate,
			&f.Status, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning transport form row: %w", err)
		}
		forms = append(forms, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return forms, nil
}

// Update overwrites a transport form's mutable columns.
func (r *TransportFormRepository) Update(ctx context.Context, f *models.TransportForm) error {
	query := `
		UPDATE transport_forms
		SET student_id = $1, route = $2, pickup_point = $3, start_date = $4, end_date = $5,
		    status = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		f.StudentID, f.Route, f.PickupPoint, f.StartDate, f.EndDate, f.Status, f.ID)
	if err != nil {
		return fmt.Errorf("error updating transport form: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTransportFormNotFound
	}

	return nil
}

// Delete removes a transport form by ID.
func (r *TransportFormRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM transport_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting transport form: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTransportFormNotFound
	}

	return nil
}
