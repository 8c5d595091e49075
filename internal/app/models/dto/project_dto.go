package dto

// CreateProjectRequest represents project creation data. Sent as multipart
// form data so an attachment can ride along; evaluationCriteria and groups
// arrive as JSON-encoded strings and are parsed by the service.
type CreateProjectRequest struct {
	Title              string `form:"title" binding:"required"`
	Description        string `form:"description"`
	ClassName          string `form:"className" binding:"required"`
	Section            string `form:"section" binding:"required"`
	Subject            string `form:"subject" binding:"required"`
	StartDate          string `form:"startDate" binding:"required"`
	EndDate            string `form:"endDate" binding:"required"`
	Status             string `form:"status"`
	EvaluationCriteria string `form:"evaluationCriteria"`
	Groups             string `form:"groups"`
}

// UpdateProjectRequest represents project update data. Absent fields are
// left untouched.
type UpdateProjectRequest struct {
	Title              *string `form:"title"`
	Description        *string `form:"description"`
	ClassName          *string `form:"className"`
	Section            *string `form:"section"`
	Subject            *string `form:"subject"`
	StartDate          *string `form:"startDate"`
	EndDate            *string `form:"endDate"`
	Status             *string `form:"status"`
	EvaluationCriteria *string `form:"evaluationCriteria"`
	Groups             *string `form:"groups"`
}
