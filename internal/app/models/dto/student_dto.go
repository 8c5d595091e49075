package dto

// CreateStudentRequest represents student enrollment data
type CreateStudentRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	RollNumber    string `json:"rollNumber" binding:"required"`
	ClassName     string `json:"className" binding:"required"`
	Section       string `json:"section" binding:"required"`
	GuardianName  string `json:"guardianName"`
	GuardianPhone string `json:"guardianPhone"`
}

// UpdateStudentRequest represents student update data. Absent fields are
// left untouched.
type UpdateStudentRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	RollNumber    *string `json:"rollNumber"`
	ClassName     *string `json:"className"`
	Section       *string `json:"section"`
	GuardianName  *string `json:"guardianName"`
	GuardianPhone *string `json:"guardianPhone"`
}
