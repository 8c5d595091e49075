package models

import "time"

// Achievement categories.
var AchievementCategories = []string{
	"Academic", "Sports", "Arts", "Science", "Community", "Other",
}

// Achievement levels, ordered narrowest to widest.
var AchievementLevels = []string{
	"School", "District", "State", "National", "International",
}

// Achievement records an extracurricular accomplishment for a student. Rows
// are write-once: there are no update or delete operations.
type Achievement struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	Date           time.Time `json:"date" db:"date"`
	Category       string    `json:"category" db:"category"`
	Level          string    `json:"level" db:"level"`
	Position       string    `json:"position" db:"position"`
	CertificateURL *string   `json:"certificateUrl,omitempty" db:"certificate_url"`
	RecordedBy     int64     `json:"recordedBy" db:"recorded_by"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	// Resolved from the students table on read
	StudentName string `json:"studentName,omitempty"`
}
