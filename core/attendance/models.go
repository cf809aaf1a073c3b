package attendance

import "github.com/gauravw/coachcenter/core"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Attendance classification. The percentage boundary is inclusive:
// exactly GoodThreshold classifies as good.
const (
	GoodThreshold = 75

	ClassGood = "good"
	ClassLow  = "low"
)

// Mark records one student's status for one calendar day. Date keys are
// expected in ISO YYYY-MM-DD form but any string is accepted; the store
// does not check that the student exists or that the date is past.
type Mark struct {
	StudentID string `json:"student_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Status    Status `json:"status" validate:"required,oneof=present absent"`
}

func (m *Mark) Validate() error {
	m.StudentID = core.CleanString(m.StudentID)
	m.Date = core.CleanString(m.Date)
	return core.Validate.Struct(m)
}

// Report summarises one student's attendance for the current month up
// to today, Sundays excluded. Total counts days with any recorded
// status; an empty month reports 100 percent.
type Report struct {
	Present    int    `json:"present"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Class      string `json:"class"` // good | low
}
