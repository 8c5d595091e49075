package models

import "time"

// DisciplinaryAction records an incident and the action taken for a student.
type DisciplinaryAction struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	Date        time.Time `json:"date" db:"date"`
	Incident    string    `json:"incident" db:"incident"`
	ActionTaken string    `json:"actionTaken" db:"action_taken"`
	RecordedBy  int64     `json:"recordedBy" db:"recorded_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
