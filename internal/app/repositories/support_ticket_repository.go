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

// SupportTicketRepository handles database operations for IT support tickets.
type SupportTicketRepository struct {
	db *pgxpool.Pool
}

// NewSupportTicketRepository creates a new support ticket repository.
func NewSupportTicketRepository(db *pgxpool.Pool) *SupportTicketRepository {
	return &SupportTicketRepository{db: db}
}

// Create inserts a support ticket.
func (r *SupportTicketRepository) Create(ctx context.Context, t *models.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (reported_by, category, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		t.ReportedBy, t.Category, t.Description, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating support ticket: %w", err)
	}

	return nil
}

// GetByID retrieves a support ticket by ID.
func (r *SupportTicketRepository) GetByID(ctx context.Context, id int64) (*models.SupportTicket, error) {
	query := `
		SELECT id, reported_by, category, description, status, created_at, updated_at
		FROM support_tickets
		WHERE id = $1
	`

	var t models.SupportTicket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ReportedBy, &t.Category, &t.Description,
		&t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSupportTicketNotFound
		}
		return nil, fmt.Errorf("error retrieving support ticket: %w", err)
	}

	return &t, nil
}

// GetAll retrieves support tickets, optionally filtered by status or
// category, newest first.
func (r *SupportTicketRepository) GetAll(ctx context.Context, status, category string) ([]*models.SupportTicket, error) {
	builder := squirrel.Select(
		"id", "reported_by", "category", "description", "status", "created_at", "updated_at",
	).
		From("support_tickets").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}
	if category != "" {
		builder = builder.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing support tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]*models.SupportTicket, 0)
	for rows.Next() {
		var t models.SupportTicket
		if err := rows.Scan(
			&t.ID, &t.ReportedBy, &t.Category, &t.Description,
			&t.Status, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning support ticket row: %w", err)
		}
		tickets = append(tickets, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// Update overwrites a support ticket's mutable columns.
func (r *SupportTicketRepository) Update(ctx context.Context, t *models.SupportTicket) error {
	query := `
		UPDATE support_tickets
		SET category = $1, description = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, t.Category, t.Description, t.Status, t.ID)
	if err != nil {
		return fmt.Errorf("error updating support ticket: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSupportTicketNotFound
	}

	return nil
}

// Delete removes a support ticket by ID.
func (r *SupportTicketRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM support_tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting support ticket: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSupportTicketNotFound
	}

	return nil
}
