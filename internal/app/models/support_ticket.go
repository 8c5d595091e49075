package models

import "time"

// Support ticket categories and statuses.
var (
	TicketCategories = []string{"Hardware", "Software", "Network", "Account", "Other"}
	TicketStatuses   = []string{"Open", "InProgress", "Resolved", "Closed"}
)

// SupportTicket is an IT support request raised by a staff member.
type SupportTicket struct {
	ID          int64     `json:"id" db:"id"`
	ReportedBy  int64     `json:"reportedBy" db:"reported_by"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
