package dto

// CreateResourceRequest represents teaching resource metadata. Sent as
// multipart form data alongside the file itself.
type CreateResourceRequest struct {
	Title     string `form:"title" binding:"required"`
	Subject   string `form:"subject" binding:"required"`
	ClassName string `form:"className" binding:"required"`
}

// UpdateResourceRequest represents resource metadata update data. Absent
// fields are left untouched; the file may be replaced.
type UpdateResourceRequest struct {
	Title     *string `form:"title"`
	Subject   *string `form:"subject"`
	ClassName *string `form:"className"`
}
