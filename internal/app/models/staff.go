package models

import "time"

// StaffRole is the role a staff account holds.
type StaffRole string

const (
	RoleAdmin      StaffRole = "ADMIN"
	RoleTeacher    StaffRole = "TEACHER"
	RoleAccountant StaffRole = "ACCOUNTANT"
	RoleSupport    StaffRole = "SUPPORT"
)

// Staff represents a staff account. Passwords are stored as bcrypt hashes and
// never serialized.
type Staff struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Role         StaffRole `json:"role" db:"role"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
