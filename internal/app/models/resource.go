package models

import "time"

// Resource is a teaching material with an uploaded file.
type Resource struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Subject    string    `json:"subject" db:"subject"`
	ClassName  string    `json:"className" db:"class_name"`
	FileURL    string    `json:"fileUrl" db:"file_url"`
	UploadedBy int64     `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
