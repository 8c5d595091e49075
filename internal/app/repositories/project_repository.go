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

// ProjectRepository handles database operations for projects. Every lookup is
// scoped to the owning staff member; a row owned by someone else scans the
// same as a missing row.
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func marshalProjectJSON(p *models.Project) (criteria, groups []byte, err error) {
	if p.EvaluationCriteria == nil {
		p.EvaluationCriteria = []models.EvaluationCriterion{}
	}
	if p.Groups == nil {
		p.Groups = []models.ProjectGroup{}
	}

	criteria, err = json.Marshal(p.EvaluationCriteria)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding evaluation criteria: %w", err)
	}
	groups, err = json.Marshal(p.Groups)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding groups: %w", err)
	}
	return criteria, groups, nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	var criteria, groups []byte

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ClassName, &p.Section, &p.Subject,
		&p.StartDate, &p.EndDate, &p.AttachmentURL, &p.Status,
		&criteria, &groups, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(criteria, &p.EvaluationCriteria); err != nil {
		return nil, fmt.Errorf("error decoding evaluation criteria: %w", err)
	}
	if err := json.Unmarshal(groups, &p.Groups); err != nil {
		return nil, fmt.Errorf("error decoding groups: %w", err)
	}

	return &p, nil
}

const projectColumns = `id, title, description, class_name, section, subject,
	start_date, end_date, attachment_url, status,
	evaluation_criteria, student_groups, created_by, created_at, updated_at`

// Create inserts a project and stamps the generated ID and timestamps.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	criteria, groups, err := marshalProjectJSON(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (title, description, class_name, section, subject,
			start_date, end_date, attachment_url, status, evaluation_criteria, student_groups, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		p.Title, p.Description, p.ClassName, p.Section, p.Subject,
		p.StartDate, p.EndDate, p.AttachmentURL, p.Status, criteria, groups, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating project: %w", err)
	}

	return nil
}

// GetByIDForOwner retrieves a project owned by the given staff member.
func (r *ProjectRepository) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1 AND created_by = $2`, projectColumns)

	p, err := scanProject(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return p, nil
}

// GetAllForOwner retrieves all projects owned by the given staff member,
// newest start date first.
func (r *ProjectRepository) GetAllForOwner(ctx context.Context, ownerID int64) ([]*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE created_by = $1 ORDER BY start_date DESC`, projectColumns)

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// Update overwrites a project's mutable columns, scoped to the owner.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	criteria, groups, err := marshalProjectJSON(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET title = $1, description = $2, class_name = $3, section = $4, subject = $5,
		    start_date = $6, end_date = $7, attachment_url = $8, status = $9,
		    evaluation_criteria = $10, student_groups = $11, updated_at = NOW()
		WHERE id = $12 AND created_by = $13
	`

	cmdTag, err := r.db.Exec(ctx, query,
		p.Title, p.Description, p.ClassName, p.Section, p.Subject,
		p.StartDate, p.EndDate, p.AttachmentURL, p.Status, criteria, groups,
		p.ID, p.CreatedBy)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// DeleteForOwner removes a project owned by the given staff member.
// Contributions referencing the project are deliberately left in place.
func (r *ProjectRepository) DeleteForOwner(ctx context.Context, id, ownerID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}
