package dto

// CreateSupportTicketRequest represents an IT support request
type CreateSupportTicketRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateSupportTicketRequest represents support ticket update data. Absent
// fields are left untouched.
type UpdateSupportTicketRequest struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
