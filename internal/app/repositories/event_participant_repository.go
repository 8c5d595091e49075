package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evren/schoolhub/internal/app/models"
)

// EventParticipantRepository handles the event/student membership table.
// Membership mutations are single atomic statements, so concurrent adds and
// removes against the same event cannot lose each other's writes.
type EventParticipantRepository struct {
	db *pgxpool.Pool
}

// NewEventParticipantRepository creates a new event participant repository.
func NewEventParticipantRepository(db *pgxpool.Pool) *EventParticipantRepository {
	return &EventParticipantRepository{db: db}
}

// Add registers a student on an event. Adding a student who is already
// registered is a no-op; the return value reports whether a row was inserted.
func (r *EventParticipantRepository) Add(ctx context.Context, eventID, studentID int64) (bool, error) {
	query := `
		INSERT INTO event_participants (event_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, student_id) DO NOTHING
	`

	cmdTag, err := r.db.Exec(ctx, query, eventID, studentID)
	if err != nil {
		return false, fmt.Errorf("error adding participant: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// Remove deregisters a student from an event. Removing a student who is not
// registered is a no-op.
func (r *EventParticipantRepository) Remove(ctx context.Context, eventID, studentID int64) error {
	query := `DELETE FROM event_participants WHERE event_id = $1 AND student_id = $2`

	if _, err := r.db.Exec(ctx, query, eventID, studentID); err != nil {
		return fmt.Errorf("error removing participant: %w", err)
	}

	return nil
}

// GetByEventID lists an event's participants in the order they joined, with
// the student row joined in.
func (r *EventParticipantRepository) GetByEventID(ctx context.Context, eventID int64) ([]*models.EventParticipant, error) {
	builder := squirrel.Select(
		"ep.id", "ep.event_id", "ep.student_id", "ep.joined_at",
		"s.first_name", "s.last_name", "s.roll_number", "s.class_name", "s.section",
	).
		From("event_participants ep").
		Join("students s ON s.id = ep.student_id").
		Where(squirrel.Eq{"ep.event_id": eventID}).
		OrderBy("ep.joined_at", "ep.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing participants: %w", err)
	}
	defer rows.Close()

	participants := make([]*models.EventParticipant, 0)
	for rows.Next() {
		var p models.EventParticipant
		var s models.Student
		if err := rows.Scan(
			&p.ID, &p.EventID, &p.StudentID, &p.JoinedAt,
			&s.FirstName, &s.LastName, &s.RollNumber, &s.ClassName, &s.Section,
		); err != nil {
			return nil, fmt.Errorf("error scanning participant row: %w", err)
		}
		s.ID = p.StudentID
		p.Student = &s
		participants = append(participants, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// CountByEventID returns the number of participants on an event.
func (r *EventParticipantRepository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting participants: %w", err)
	}
	return count, nil
}
