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

// LeaveRequestRepository handles database operations for leave requests.
type LeaveRequestRepository struct {
	db *pgxpool.Pool
}

// NewLeaveRequestRepository creates a new leave request repository.
func NewLeaveRequestRepository(db *pgxpool.Pool) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

// Create inserts a leave request.
func (r *LeaveRequestRepository) Create(ctx context.Context, lr *models.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (staff_id, from_date, to_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		lr.StaffID, lr.FromDate, lr.ToDate, lr.Reason, lr.Status,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating leave request: %w", err)
	}

	return nil
}

// GetByID retrieves a leave request by ID.
func (r *LeaveRequestRepository) GetByID(ctx context.Context, id int64) (*models.LeaveRequest, error) {
	query := `
		SELECT id, staff_id, from_date, to_date, reason, status, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var lr models.LeaveRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.StaffID, &lr.FromDate, &lr.ToDate, &lr.Reason,
		&lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving leave request: %w", err)
	}

	return &lr, nil
}

// GetAll retrieves leave requests, optionally filtered by staff member or
// status, newest first.
func (r *LeaveRequestRepository) GetAll(ctx context.Context, staffID int64, status string) ([]*models.LeaveRequest, error) {
	builder := squirrel.Select(
		"id", "staff_id", "from_date", "to_date", "reason", "status", "created_at", "updated_at",
	).
		From("leave_requests").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if staffID > 0 {
		builder = builder.Where(squirrel.Eq{"staff_id": staffID})
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
		return nil, fmt.Errorf("error listing leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.LeaveRequest, 0)
	for rows.Next() {
		var lr models.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.StaffID, &lr.FromDate, &lr.ToDate, &lr.Reason,
			&lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning leave request row: %w", err)
		}
		requests = append(requests, &lr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Update overwrites a leave request's mutable columns.
func (r *LeaveRequestRepository) Update(ctx context.Context, lr *models.LeaveRequest) error {
	query := `
		UPDATE leave_requests
		SET from_date = $1, to_date = $2, reason = $3, status = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, lr.FromDate, lr.ToDate, lr.Reason, lr.Status, lr.ID)
	if err != nil {
		return fmt.Errorf("error updating leave request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLeaveRequestNotFound
	}

	return nil
}

// Delete removes a leave request by ID.
func (r *LeaveRequestRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting leave request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLeaveRequestNotFound
	}

	return nil
}
