package attendance

import (
	"math"
	"time"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

var nowFunc = time.Now // mockable

type (
	Repository interface {
		// UpsertAttendance records status for the (studentID, date) pair,
		// overwriting any earlier status for the same pair.
		UpsertAttendance(studentID, date string, status Status) error
		// GetStudentAttendance returns the date->status map for one student.
		// Unknown students yield an empty map.
		GetStudentAttendance(studentID string) (map[string]Status, error)
		// InitAttendance seeds an empty register for a student.
		InitAttendance(studentID string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Mark upserts one attendance status. Teacher only. Later marks for the
// same (student, date) pair overwrite earlier ones.
func (svc *Service) Mark(actor user.User, m Mark) error {
	if !actor.IsTeacher() {
		return core.NewPermissionError("only teachers may mark attendance")
	}
	return svc.repo.UpsertAttendance(m.StudentID, m.Date, m.Status)
}

// ForStudent returns the raw date->status map for one student.
func (svc *Service) ForStudent(studentID string) (map[string]Status, error) {
	return svc.repo.GetStudentAttendance(studentID)
}

// InitStudent seeds an empty register for a newly enrolled student.
func (svc *Service) InitStudent(studentID string) error {
	return svc.repo.InitAttendance(studentID)
}

// MonthlyReport computes the student's attendance for the current month
// up to and including today, skipping Sundays. Days with no recorded
// status do not count towards the total; a month with no recorded days
// reports 100 percent.
func (svc *Service) MonthlyReport(studentID string) (Report, error) {
	recorded, err := svc.repo.GetStudentAttendance(studentID)
	if err != nil {
		return Report{}, err
	}

	now := nowFunc()
	year, month, _ := now.Date()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, now.Location()).Day()

	var rep Report
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		if d.After(now) {
			break
		}
		if d.Weekday() == time.Sunday {
			continue
		}
		status, ok := recorded[core.FormatDate(d)]
		if !ok {
			continue
		}
		rep.Total++
		if status == StatusPresent {
			rep.Present++
		}
	}

	rep.Percentage = 100
	if rep.Total > 0 {
		rep.Percentage = int(math.Round(float64(rep.Present) / float64(rep.Total) * 100))
	}
	rep.Class = ClassLow
	if rep.Percentage >= GoodThreshold {
		rep.Class = ClassGood
	}
	return rep, nil
}
