package models

import "time"

// Event categories.
const (
	EventCategoryClub        = "club"
	EventCategoryCompetition = "competition"
	EventCategoryCultural    = "cultural"
	EventCategoryOther       = "other"
)

// EventCategories is the closed set accepted on create and update.
var EventCategories = []string{
	EventCategoryClub,
	EventCategoryCompetition,
	EventCategoryCultural,
	EventCategoryOther,
}

// Event represents a scheduled school activity.
type Event struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Category  string    `json:"category" db:"category"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Populated on single-event reads only.
	ParticipantCount int `json:"participantCount"`
}

// EventParticipant is one row in the event/student membership table. Rows are
// unique per (event, student); insertion order is preserved via JoinedAt.
type EventParticipant struct {
	ID        int64     `json:"id" db:"id"`
	EventID   int64     `json:"eventId" db:"event_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	JoinedAt  time.Time `json:"joinedAt" db:"joined_at"`

	// Joined in on list
	Student *Student `json:"student,omitempty"`
}
