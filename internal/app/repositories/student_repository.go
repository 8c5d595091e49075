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
	"github.com/evren/schoolhub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a student and stamps the generated ID and timestamps.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, roll_number, class_name, section, guardian_name, guardian_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.RollNumber,
		student.ClassName, student.Section, student.GuardianName, student.GuardianPhone,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRollNumberAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, roll_number, class_name, section, guardian_name, guardian_phone, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.RollNumber,
		&student.ClassName, &student.Section, &student.GuardianName, &student.GuardianPhone,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves a page of students, optionally filtered by class and
// section, ordered by roll number.
func (r *StudentRepository) GetAll(ctx context.Context, className, section string, offset uint64, limit int) ([]*models.Student, error) {
	builder := squirrel.Select(
		"id", "first_name", "last_name", "roll_number", "class_name", "section",
		"guardian_name", "guardian_phone", "created_at", "updated_at",
	).
		From("students").
		OrderBy("roll_number").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if className != "" {
		builder = builder.Where(squirrel.Eq{"class_name": className})
	}
	if section != "" {
		builder = builder.Where(squirrel.Eq{"section": section})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.RollNumber,
			&student.ClassName, &student.Section, &student.GuardianName, &student.GuardianPhone,
			&student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Count returns the number of students matching the given filters.
func (r *StudentRepository) Count(ctx context.Context, className, section string) (int64, error) {
	builder := squirrel.Select("COUNT(*)").
		From("students").
		PlaceholderFormat(squirrel.Dollar)

	if className != "" {
		builder = builder.Where(squirrel.Eq{"class_name": className})
	}
	if section != "" {
		builder = builder.Where(squirrel.Eq{"section": section})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return total, nil
}

// Exists reports whether a student with the given ID exists.
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Update overwrites a student's mutable columns.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, roll_number = $3, class_name = $4,
		    section = $5, guardian_name = $6, guardian_phone = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.RollNumber, student.ClassName,
		student.Section, student.GuardianName, student.GuardianPhone, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRollNumberAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID. Records referencing the student elsewhere
// are left untouched.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
