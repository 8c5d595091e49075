package models

import "time"

// Approval statuses shared by transport forms and leave requests.
const (
	ApprovalStatusPending  = "Pending"
	ApprovalStatusApproved = "Approved"
	ApprovalStatusRejected = "Rejected"
)

// ApprovalStatuses is the closed set for status updates.
var ApprovalStatuses = []string{
	ApprovalStatusPending,
	ApprovalStatusApproved,
	ApprovalStatusRejected,
}

// TransportForm is a student's request for a seat on a transport route.
type TransportForm struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	Route       string    `json:"route" db:"route"`
	PickupPoint string    `json:"pickupPoint" db:"pickup_point"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
