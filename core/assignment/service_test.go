package assignment

import (
	"testing"
	"time"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
	notifysvc "github.com/gauravw/coachcenter/services/notifier"
)

type fakeRepo struct {
	rows []Assignment
	pk   int64
}

func (r *fakeRepo) CreateAssignment(a Assignment) (Assignment, error) {
	r.pk++
	a.ID = r.pk
	a.Submissions = make(map[string]Submission)
	r.rows = append([]Assignment{a}, r.rows...)
	return a, nil
}

func (r *fakeRepo) QueryAllAssignments() ([]Assignment, error) {
	rows := make([]Assignment, len(r.rows))
	copy(rows, r.rows)
	return rows, nil
}

func (r *fakeRepo) GetAssignmentByID(id int64) (Assignment, error) {
	for _, a := range r.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return Assignment{}, ErrNotFound
}

func (r *fakeRepo) UpsertSubmission(assignmentID int64, studentID string, sub Submission) error {
	for i := range r.rows {
		if r.rows[i].ID == assignmentID {
			r.rows[i].Submissions[studentID] = sub
			return nil
		}
	}
	return ErrNotFound
}

type fakeCounter int

func (c fakeCounter) StudentCount() (int, error) { return int(c), nil }

var (
	teacher  = user.User{ID: "teacher-1", Role: user.RoleTeacher}
	student  = user.User{ID: "student-1", Role: user.RoleStudent}
	student2 = user.User{ID: "student-2", Role: user.RoleStudent}
)

func TestService_Create(t *testing.T) {
	repo := &fakeRepo{}
	notifier := notifysvc.NewCaptureNotifier()
	svc := NewService(repo, fakeCounter(2), notifier)

	na := NewAssignment{Title: "Lab Report", Subject: "Physics", DueDate: "2023-11-05"}

	if _, err := svc.Create(student, na); !core.IsPermissionDenied(err) {
		t.Errorf("Create() as student error = %v, want permission denied", err)
	}
	if _, err := svc.Create(user.User{ID: "admin-1", Role: user.RoleAdmin}, na); !core.IsPermissionDenied(err) {
		t.Errorf("Create() as admin error = %v, want permission denied", err)
	}

	a, err := svc.Create(teacher, na)
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}
	if a.ID != 1 {
		t.Errorf("Create() ID = %d, want 1", a.ID)
	}
	if len(a.Submissions) != 0 {
		t.Errorf("Create() Submissions = %v, want empty", a.Submissions)
	}
	if msgs := notifier.Messages(); len(msgs) != 1 || msgs[0] != `New assignment posted: "Lab Report"` {
		t.Errorf("Notify() messages = %v", msgs)
	}
}

func TestService_Submit(t *testing.T) {
	origNow := nowFunc
	nowFunc = func() time.Time { return time.Date(2023, time.November, 4, 9, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = origNow }()

	repo := &fakeRepo{}
	notifier := notifysvc.NewCaptureNotifier()
	svc := NewService(repo, fakeCounter(2), notifier)

	a, err := svc.Create(teacher, NewAssignment{Title: "Lab Report", Subject: "Physics", DueDate: "2023-11-05"})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}
	notifier.Reset()

	if err = svc.Submit(teacher, a.ID, "notes.pdf"); !core.IsPermissionDenied(err) {
		t.Errorf("Submit() as teacher error = %v, want permission denied", err)
	}
	if err = svc.Submit(student, 404, "report.pdf"); !core.IsNotFound(err) {
		t.Errorf("Submit() error = %v, want not found", err)
	}

	if err = svc.Submit(student, a.ID, "report_v1.pdf"); err != nil {
		t.Fatalf("Submit() unexpected error = %v", err)
	}
	// resubmitting replaces the earlier file, no duplicate record
	if err = svc.Submit(student, a.ID, "report_v2.pdf"); err != nil {
		t.Fatalf("Submit() unexpected error = %v", err)
	}

	got, err := svc.GetByID(a.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error = %v", err)
	}
	if len(got.Submissions) != 1 {
		t.Fatalf("Submissions len = %d, want 1", len(got.Submissions))
	}
	sub := got.Submissions[student.ID]
	if sub.File != "report_v2.pdf" {
		t.Errorf("Submission.File = %s, want report_v2.pdf", sub.File)
	}
	if sub.Status != StatusSubmitted {
		t.Errorf("Submission.Status = %s, want %s", sub.Status, StatusSubmitted)
	}
	if sub.SubmissionDate != "2023-11-04" {
		t.Errorf("Submission.SubmissionDate = %s, want 2023-11-04", sub.SubmissionDate)
	}
	if msgs := notifier.Messages(); len(msgs) != 2 || msgs[0] != "Assignment submitted successfully!" {
		t.Errorf("Notify() messages = %v", msgs)
	}
}

func TestService_CoverageFor(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, fakeCounter(2), notifysvc.NewCaptureNotifier())

	a, err := svc.Create(teacher, NewAssignment{Title: "Quiz", Subject: "Math", DueDate: "2023-11-10"})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}

	cov, err := svc.CoverageFor(a.ID)
	if err != nil {
		t.Fatalf("CoverageFor() unexpected error = %v", err)
	}
	if want := (Coverage{Submitted: 0, TotalStudents: 2}); cov != want {
		t.Errorf("CoverageFor() = %+v, want %+v", cov, want)
	}

	if err = svc.Submit(student, a.ID, "quiz.pdf"); err != nil {
		t.Fatalf("Submit() unexpected error = %v", err)
	}
	if err = svc.Submit(student2, a.ID, "quiz.pdf"); err != nil {
		t.Fatalf("Submit() unexpected error = %v", err)
	}

	cov, err = svc.CoverageFor(a.ID)
	if err != nil {
		t.Fatalf("CoverageFor() unexpected error = %v", err)
	}
	if want := (Coverage{Submitted: 2, TotalStudents: 2}); cov != want {
		t.Errorf("CoverageFor() = %+v, want %+v", cov, want)
	}

	if _, err = svc.CoverageFor(404); !core.IsNotFound(err) {
		t.Errorf("CoverageFor() error = %v, want not found", err)
	}
}
