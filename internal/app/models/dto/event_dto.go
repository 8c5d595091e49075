package dto

// CreateEventRequest represents event creation data. Dates accept
// "2006-01-02" or RFC3339.
type CreateEventRequest struct {
	Title     string `json:"title" binding:"required"`
	Category  string `json:"category" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// UpdateEventRequest represents event update data. Absent fields are left
// untouched.
type UpdateEventRequest struct {
	Title     *string `json:"title"`
	Category  *string `json:"category"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// ParticipantRequest identifies the student to add to or remove from an
// event's participant set.
type ParticipantRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0"`
}
