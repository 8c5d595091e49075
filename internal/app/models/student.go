package models

import "time"

// Student represents an enrolled student.
type Student struct {
	ID            int64     `json:"id" db:"id"`
	FirstName     string    `json:"firstName" db:"first_name"`
	LastName      string    `json:"lastName" db:"last_name"`
	RollNumber    string    `json:"rollNumber" db:"roll_number"`
	ClassName     string    `json:"className" db:"class_name"`
	Section       string    `json:"section" db:"section"`
	GuardianName  string    `json:"guardianName" db:"guardian_name"`
	GuardianPhone string    `json:"guardianPhone" db:"guardian_phone"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
