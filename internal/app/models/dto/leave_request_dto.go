package dto

// CreateLeaveRequestRequest represents a staff leave request
type CreateLeaveRequestRequest struct {
	StaffID  int64  `json:"staffId" binding:"required,gt=0"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// UpdateLeaveRequestRequest represents leave request update data. Absent
// fields are left untouched.
type UpdateLeaveRequestRequest struct {
	FromDate *string `json:"fromDate"`
	ToDate   *string `json:"toDate"`
	Reason   *string `json:"reason"`
	Status   *string `json:"status"`
}
