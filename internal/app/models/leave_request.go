package models

import "time"

// LeaveRequest is a staff member's request for leave.
type LeaveRequest struct {
	ID        int64     `json:"id" db:"id"`
	StaffID   int64     `json:"staffId" db:"staff_id"`
	FromDate  time.Time `json:"fromDate" db:"from_date"`
	ToDate    time.Time `json:"toDate" db:"to_date"`
	Reason    string    `json:"reason" db:"reason"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
