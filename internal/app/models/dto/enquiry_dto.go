package dto

// CreateEnquiryRequest represents an admission or general enquiry
type CreateEnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// UpdateEnquiryRequest represents enquiry update data. Absent fields are
// left untouched.
type UpdateEnquiryRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}
