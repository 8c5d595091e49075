package dto

// CreateDisciplinaryActionRequest represents a disciplinary incident record
type CreateDisciplinaryActionRequest struct {
	StudentID   int64  `json:"studentId" binding:"required,gt=0"`
	Date        string `json:"date" binding:"required"`
	Incident    string `json:"incident" binding:"required"`
	ActionTaken string `json:"actionTaken" binding:"required"`
}

// UpdateDisciplinaryActionRequest represents disciplinary record update
// data. Absent fields are left untouched.
type UpdateDisciplinaryActionRequest struct {
	StudentID   *int64  `json:"studentId" binding:"omitempty,gt=0"`
	Date        *string `json:"date"`
	Incident    *string `json:"incident"`
	ActionTaken *string `json:"actionTaken"`
}
