package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
)

// SalaryTemplateRepository handles database operations for salary templates.
type SalaryTemplateRepository struct {
	db *pgxpool.Pool
}

// NewSalaryTemplateRepository creates a new salary template repository.
func NewSalaryTemplateRepository(db *pgxpool.Pool) *SalaryTemplateRepository {
	return &SalaryTemplateRepository{db: db}
}

func marshalPayComponents(t *models.SalaryTemplate) (allowances, deductions []byte, err error) {
	if t.Allowances == nil {
		t.Allowances = []models.PayComponent{}
	}
	if t.Deductions == nil {
		t.Deductions = []models.PayComponent{}
	}

	allowances, err = json.Marshal(t.Allowances)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding allowances: %w", err)
	}
	deductions, err = json.Marshal(t.Deductions)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding deductions: %w", err)
	}
	return allowances, deductions, nil
}

func scanSalaryTemplate(row pgx.Row) (*models.SalaryTemplate, error) {
	var t models.SalaryTemplate
	var allowances, deductions []byte

	err := row.Scan(
		&t.ID, &t.Name, &t.Grade, &t.BasicSalary, &allowances, &deductions,
		&t.EffectiveFrom, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(allowances, &t.Allowances); err != nil {
		return nil, fmt.Errorf("error decoding allowances: %w", err)
	}
	if err := json.Unmarshal(deductions, &t.Deductions); err != nil {
		return nil, fmt.Errorf("error decoding deductions: %w", err)
	}

	return &t, nil
}

// Create inserts a salary template.
func (r *SalaryTemplateRepository) Create(ctx context.Context, t *models.SalaryTemplate) error {
	allowances, deductions, err := marshalPayComponents(t)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO salary_templates (name, grade, basic_salary, allowances, deductions, effective_from, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		t.Name, t.Grade, t.BasicSalary, allowances, deductions, t.EffectiveFrom, t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating salary template: %w", err)
	}

	return nil
}

// GetByID retrieves a salary template by ID.
func (r *SalaryTemplateRepository) GetByID(ctx context.Context, id int64) (*models.SalaryTemplate, error) {
	query := `
		SELECT id, name, grade, basic_salary, allowances, deductions, effective_from, created_by, created_at, updated_at
		FROM salary_templates
		WHERE id = $1
	`

	t, err := scanSalaryTemplate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSalaryTemplateNotFound
		}
		return nil, fmt.Errorf("error retrieving salary template: %w", err)
	}

	return t, nil
}

// GetAll retrieves all salary templates, most recent effective date first.
func (r *SalaryTemplateRepository) GetAll(ctx context.Context) ([]*models.SalaryTemplate, error) {
	query := `
		SELECT id, name, grade, basic_salary, allowances, deductions, effective_from, created_by, created_at, updated_at
		FROM salary_templates
		ORDER BY effective_from DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing salary templates: %w", err)
	}
	defer rows.Close()

	templates := make([]*models.SalaryTemplate, 0)
	for rows.Next() {
		t, err := scanSalaryTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning salary template row: %w", err)
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

// Update overwrites a salary template's mutable columns.
func (r *SalaryTemplateRepository) Update(ctx context.Context, t *models.SalaryTemplate) error {
	allowances, deductions, err := marshalPayComponents(t)
	if err != nil {
		return err
	}

	query := `
		UPDATE salary_templates
		SET name = $1, grade = $2, basic_salary = $3, allowances = $4, deductions = $5,
		    effective_from = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		t.Name, t.Grade, t.BasicSalary, allowances, deductions, t.EffectiveFrom, t.ID)
	if err != nil {
		return fmt.Errorf("error updating salary template: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSalaryTemplateNotFound
	}

	return nil
}

// Delete removes a salary template by ID.
func (r *SalaryTemplateRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM salary_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting salary template: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSalaryTemplateNotFound
	}

	return nil
}
