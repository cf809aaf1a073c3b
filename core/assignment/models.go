package assignment

import "github.com/gauravw/coachcenter/core"

// StatusSubmitted is the only submission status the store records.
const StatusSubmitted = "Submitted"

type Submission struct {
	Status         string `json:"status"`
	File           string `json:"file"`
	SubmissionDate string `json:"submission_date"`
}

type Assignment struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Subject     string                `json:"subject"`
	DueDate     string                `json:"due_date"`
	Submissions map[string]Submission `json:"submissions"` // keyed by student ID
}

// NewAssignment contains information needed to post an Assignment.
type NewAssignment struct {
	Title   string `json:"title" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Subject = core.CleanString(na.Subject)
	na.DueDate = core.CleanString(na.DueDate)
	return core.Validate.Struct(na)
}

// Coverage reports how many of the enrolled students have submitted.
type Coverage struct {
	Submitted     int `json:"submitted"`
	TotalStudents int `json:"total_students"`
}
