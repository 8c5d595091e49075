package dto

// CreateTransportFormRequest represents a transport seat request
type CreateTransportFormRequest struct {
	StudentID   int64  `json:"studentId" binding:"required,gt=0"`
	Route       string `json:"route" binding:"required"`
	PickupPoint string `json:"pickupPoint" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

// UpdateTransportFormRequest represents transport form update data. Absent
// fields are left untouched.
type UpdateTransportFormRequest struct {
	Route       *string `json:"route"`
	PickupPoint *string `json:"pickupPoint"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Status      *string `json:"status"`
}
