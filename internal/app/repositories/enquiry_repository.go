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

// EnquiryRepository handles database operations for admission enquiries.
type EnquiryRepository struct {
	db *pgxpool.Pool
}

// NewEnquiryRepository creates a new enquiry repository.
func NewEnquiryRepository(db *pgxpool.Pool) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

// Create inserts an enquiry.
func (r *EnquiryRepository) Create(ctx context.Context, e *models.Enquiry) error {
	query := `
		INSERT INTO enquiries (name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		e.Name, e.Email, e.Phone, e.Message, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating enquiry: %w", err)
	}

	return nil
}

// GetByID retrieves an enquiry by ID.
func (r *EnquiryRepository) GetByID(ctx context.Context, id int64) (*models.Enquiry, error) {
	query := `
		SELECT id, name, email, phone, message, status, created_at, updated_at
		FROM enquiries
		WHERE id = $1
	`

	var e models.Enquiry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone,
		&e.Message, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("error retrieving enquiry: %w", err)
	}

	return &e, nil
}

// GetAll retrieves enquiries, optionally filtered by status, newest first.
func (r *EnquiryRepository) GetAll(ctx context.Context, status string) ([]*models.Enquiry, error) {
	builder := squirrel.Select(
		"id", "name", "email", "phone", "message", "status", "created_at", "updated_at",
	).
		From("enquiries").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := make([]*models.Enquiry, 0)
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Email, &e.Phone,
			&e.Message, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning enquiry row: %w", err)
		}
		enquiries = append(enquiries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enquiries, nil
}

// Update overwrites an enquiry's mutable columns.
func (r *EnquiryRepository) Update(ctx context.Context, e *models.Enquiry) error {
	query := `
		UPDATE enquiries
		SET name = $1, email = $2, phone = $3, message = $4, status = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		e.Name, e.Email, e.Phone, e.Message, e.Status, e.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating enquiry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnquiryNotFound
	}

	return nil
}

// Delete removes an enquiry by ID.
func (r *EnquiryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enquiry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnquiryNotFound
	}

	return nil
}
