package dto

// CreateContributionRequest represents a dated evaluation note for one
// student on a project.
type CreateContributionRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required"`
	Note      string `json:"note" binding:"required"`
}
