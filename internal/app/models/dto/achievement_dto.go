package dto

// CreateAchievementRequest represents achievement creation data. The student
// is referenced by ID and must exist; the student's name is resolved into the
// response.
type CreateAchievementRequest struct {
	StudentID   int64  `json:"studentId" binding:"required,gt=0"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Level       string `json:"level" binding:"required"`
	Position    string `json:"position"`

	CertificateURL *string `json:"certificateUrl"`
}
