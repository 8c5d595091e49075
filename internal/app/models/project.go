package models

import "time"

// Project statuses. Status is advanced by a plain field update; there is no
// transition validation between the states.
const (
	ProjectStatusPlanned    = "Planned"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"
	ProjectStatusEvaluated  = "Evaluated"
)

// ProjectStatuses is the closed set accepted on create and update.
var ProjectStatuses = []string{
	ProjectStatusPlanned,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusEvaluated,
}

// EvaluationCriterion is one weighted grading criterion.
type EvaluationCriterion struct {
	Criterion string `json:"criterion"`
	Weightage int    `json:"weightage"`
}

// ProjectGroup names a set of students working together.
type ProjectGroup struct {
	Name       string  `json:"name"`
	StudentIDs []int64 `json:"studentIds"`
}

// Project represents a teacher-assigned group project. Projects are owned by
// the staff member who created them; all reads and writes are scoped to that
// owner, so another owner's project is indistinguishable from a missing one.
type Project struct {
	ID                 int64                 `json:"id" db:"id"`
	Title              string                `json:"title" db:"title"`
	Description        string                `json:"description" db:"description"`
	ClassName          string                `json:"className" db:"class_name"`
	Section            string                `json:"section" db:"section"`
	Subject            string                `json:"subject" db:"subject"`
	StartDate          time.Time             `json:"startDate" db:"start_date"`
	EndDate            time.Time             `json:"endDate" db:"end_date"`
	AttachmentURL      *string               `json:"attachmentUrl,omitempty" db:"attachment_url"`
	Status             string                `json:"status" db:"status"`
	EvaluationCriteria []EvaluationCriterion `json:"evaluationCriteria" db:"evaluation_criteria"`
	Groups             []ProjectGroup        `json:"groups" db:"groups"`
	CreatedBy          int64                 `json:"createdBy" db:"created_by"`
	CreatedAt          time.Time             `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time             `json:"updatedAt" db:"updated_at"`
}

// Contribution records a dated evaluation note for a student on a project.
// Write-once: created and listed, never updated or deleted. Deleting the
// project does not cascade here; rows keep the dangling project reference.
type Contribution struct {
	ID         int64     `json:"id" db:"id"`
	ProjectID  int64     `json:"projectId" db:"project_id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	Date       time.Time `json:"date" db:"date"`
	Note       string    `json:"note" db:"note"`
	RecordedBy int64     `json:"recordedBy" db:"recorded_by"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Joined in on list
	StudentName       string `json:"studentName,omitempty"`
	StudentRollNumber string `json:"studentRollNumber,omitempty"`
}
