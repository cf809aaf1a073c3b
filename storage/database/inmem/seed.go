package inmemdb

import (
	"time"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/assignment"
	"github.com/gauravw/coachcenter/core/attendance"
	"github.com/gauravw/coachcenter/core/fee"
	"github.com/gauravw/coachcenter/core/notice"
	"github.com/gauravw/coachcenter/core/user"
	"github.com/gauravw/coachcenter/core/video"
)

var seedNowFunc = time.Now // mockable

// Seed loads the bootstrap snapshot: the fixed demo accounts plus their
// notices, assignments, videos, fees and a deterministic attendance
// register for the current month. Call once, before handing out
// repositories.
func (db *DB) Seed() {
	db.seedUsers()
	db.seedNotices()
	db.seedAttendance()
	db.seedAssignments()
	db.seedVideos()
	db.seedFees()
}

func (db *DB) seedUsers() {
	users := []user.User{
		{ID: "admin1", Username: "gaurav", Password: "gauravB0916w", Role: user.RoleAdmin, Name: "Gaurav"},
		{ID: "teacher1", Username: "teacher", Password: "password", Role: user.RoleTeacher, Name: "Dr. Evelyn Reed"},
		{ID: "student1", Username: "student", Password: "password", Role: user.RoleStudent, Name: "Alex Johnson"},
		{ID: "student2", Username: "student2", Password: "password", Role: user.RoleStudent, Name: "Maria Garcia"},
	}
	for i := range users {
		db.user.table[users[i].ID] = &users[i]
		db.user.order = append(db.user.order, users[i].ID)
	}
}

func (db *DB) seedNotices() {
	db.notice.rows = []notice.Notice{
		{ID: 1, Title: "Mid-Term Exams Schedule", Content: "The mid-term exams will be held from 15th to 20th of next month. Please prepare well.", Author: "Dr. Evelyn Reed", Date: "2023-10-26", Pinned: true},
		{ID: 2, Title: "Holiday Announcement", Content: "The center will be closed for the national holiday on the 1st of next month.", Author: "Gaurav", Date: "2023-10-25", Pinned: false},
	}
	db.notice.pk = 2
}

// seedAttendance marks every working day of the current month up to
// today: student1 fully present, student2 absent on days of the month
// divisible by four.
func (db *DB) seedAttendance() {
	db.attendance.table["student1"] = make(map[string]attendance.Status)
	db.attendance.table["student2"] = make(map[string]attendance.Status)

	now := seedNowFunc()
	year, month, _ := now.Date()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, now.Location()).Day()

	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		if d.After(now) {
			break
		}
		if d.Weekday() == time.Sunday {
			continue
		}
		date := core.FormatDate(d)
		db.attendance.table["student1"][date] = attendance.StatusPresent
		if day%4 == 0 {
			db.attendance.table["student2"][date] = attendance.StatusAbsent
		} else {
			db.attendance.table["student2"][date] = attendance.StatusPresent
		}
	}
}

func (db *DB) seedAssignments() {
	db.assignment.rows = []assignment.Assignment{
		{
			ID: 1, Title: "Physics: Chapter 5 Problems", Subject: "Physics", DueDate: "2023-11-05",
			Submissions: map[string]assignment.Submission{
				"student1": {Status: assignment.StatusSubmitted, File: "alex_physics.pdf", SubmissionDate: "2023-11-04"},
			},
		},
		{ID: 2, Title: "Math Quiz: Algebra", Subject: "Math", DueDate: "2023-11-02", Submissions: map[string]assignment.Submission{}},
	}
	db.assignment.pk = 2
}

func (db *DB) seedVideos() {
	db.video.rows = []video.Video{
		{ID: 1, Subject: "Physics", Title: "Introduction to Thermodynamics", URL: "https://www.youtube.com/embed/1_p5tW-I_e8"},
		{ID: 2, Subject: "Math", Title: "Calculus Basics: Derivatives", URL: "https://www.youtube.com/embed/9vKqVkMQff4"},
	}
	db.video.pk = 2
}

func (db *DB) seedFees() {
	db.fee.table["student1"] = fee.Fee{Total: 5000, Paid: 5000, Pending: 0}
	db.fee.table["student2"] = fee.Fee{Total: 5000, Paid: 3000, Pending: 2000}
}
