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

// ResourceRepository handles database operations for teaching resources.
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository.
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a resource.
func (r *ResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	query := `
		INSERT INTO resources (title, subject, class_name, file_url, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		res.Title, res.Subject, res.ClassName, res.FileURL, res.UploadedBy,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}

	return nil
}

// GetByID retrieves a resource by ID.
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	query := `
		SELECT id, title, subject, class_name, file_url, uploaded_by, created_at, updated_at
		FROM resources
		WHERE id = $1
	`

	var res models.Resource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.Title, &res.Subject, &res.ClassName,
		&res.FileURL, &res.UploadedBy, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}

	return &res, nil
}

// GetAll retrieves resources, optionally filtered by subject or class,
// newest first.
func (r *ResourceRepository) GetAll(ctx context.Context, subject, className string) ([]*models.Resource, error) {
	builder := squirrel.Select(
		"id", "title", "subject", "class_name", "file_url", "uploaded_by", "created_at", "updated_at",
	).
		From("resources").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if subject != "" {
		builder = builder.Where(squirrel.Eq{"subject": subject})
	}
	if className != "" {
		builder = builder.Where(squirrel.Eq{"class_name": className})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*models.Resource, 0)
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(
			&res.ID, &res.Title, &res.Subject, &res.ClassName,
			&res.FileURL, &res.UploadedBy, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		resources = append(resources, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}

// Update overwrites a resource's mutable columns.
func (r *ResourceRepository) Update(ctx context.Context, res *models.Resource) error {
	query := `
		UPDATE resources
		SET title = $1, subject = $2, class_name = $3, file_url = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, res.Title, res.Subject, res.ClassName, res.FileURL, res.ID)
	if err != nil {
		return fmt.Errorf("error updating resource: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a resource by ID.
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
