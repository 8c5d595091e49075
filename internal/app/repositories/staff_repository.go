package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/dberrors"
)

// StaffRepository handles database operations for staff accounts.
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository.
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create inserts a staff account and stamps the generated ID and timestamps.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staff (email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		staff.Email, staff.PasswordHash, staff.FirstName, staff.LastName, staff.Role, staff.IsActive,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating staff: %w", err)
	}

	return nil
}

// GetByID retrieves a staff account by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, is_active, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var staff models.Staff
	err := r.db.QueryRow(ctx, query, id).Scan(
		&staff.ID, &staff.Email, &staff.PasswordHash, &staff.FirstName, &staff.LastName,
		&staff.Role, &staff.IsActive, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff: %w", err)
	}

	return &staff, nil
}

// GetByEmail retrieves a staff account by email for login.
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, is_active, created_at, updated_at
		FROM staff
		WHERE email = $1
	`

	var staff models.Staff
	err := r.db.QueryRow(ctx, query, email).Scan(
		&staff.ID, &staff.Email, &staff.PasswordHash, &staff.FirstName, &staff.LastName,
		&staff.Role, &staff.IsActive, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff by email: %w", err)
	}

	return &staff, nil
}

// GetAll retrieves all staff accounts ordered by name.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, is_active, created_at, updated_at
		FROM staff
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing staff: %w", err)
	}
	defer rows.Close()

	staffList := make([]*models.Staff, 0)
	for rows.Next() {
		var staff models.Staff
		if err := rows.Scan(
			&staff.ID, &staff.Email, &staff.PasswordHash, &staff.FirstName, &staff.LastName,
			&staff.Role, &staff.IsActive, &staff.CreatedAt, &staff.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning staff row: %w", err)
		}
		staffList = append(staffList, &staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staffList, nil
}

// Update overwrites a staff account's mutable columns.
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	query := `
		UPDATE staff
		SET email = $1, first_name = $2, last_name = $3, role = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		staff.Email, staff.FirstName, staff.LastName, staff.Role, staff.IsActive, staff.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating staff: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// Delete removes a staff account by ID.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}
