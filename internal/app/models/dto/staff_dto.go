package dto

// CreateStaffRequest represents staff account creation data
type CreateStaffRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=ADMIN TEACHER ACCOUNTANT SUPPORT"`
}

// UpdateStaffRequest represents staff update data. Absent fields are left
// untouched; passwords are changed through this path as plain text and
// re-hashed.
type UpdateStaffRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role" binding:"omitempty,oneof=ADMIN TEACHER ACCOUNTANT SUPPORT"`
	IsActive  *bool   `json:"isActive"`
}
