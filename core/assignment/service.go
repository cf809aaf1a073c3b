package assignment

import (
	"errors"
	"fmt"
	"time"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("assignment not found")
)

type (
	Repository interface {
		// CreateAssignment assigns an ID, starts with no submissions and
		// prepends the assignment so insertion order stays newest-first.
		CreateAssignment(a Assignment) (Assignment, error)
		QueryAllAssignments() ([]Assignment, error)
		GetAssignmentByID(id int64) (Assignment, error)
		// UpsertSubmission records sub for (assignmentID, studentID),
		// overwriting any earlier submission by the same student.
		// ErrNotFound for an unknown assignment.
		UpsertSubmission(assignmentID int64, studentID string, sub Submission) error
	}

	// StudentCounter reports the number of enrolled students, for coverage.
	StudentCounter interface {
		StudentCount() (int, error)
	}

	Service struct {
		repo     Repository
		students StudentCounter
		notifier core.Notifier
	}
)

func NewService(repo Repository, students StudentCounter, notifier core.Notifier) *Service {
	return &Service{repo: repo, students: students, notifier: notifier}
}

// Create posts a new assignment with no submissions. Teacher only.
func (svc *Service) Create(actor user.User, na NewAssignment) (Assignment, error) {
	if !actor.IsTeacher() {
		return Assignment{}, core.NewPermissionError("only teachers may post assignments")
	}
	a := Assignment{
		Title:   na.Title,
		Subject: na.Subject,
		DueDate: na.DueDate,
	}
	a, err := svc.repo.CreateAssignment(a)
	if err != nil {
		return Assignment{}, err
	}
	svc.notifier.Notify(fmt.Sprintf("New assignment posted: %q", a.Title))
	return a, nil
}

// Submit records the acting student's submission, dated today. A second
// submission by the same student overwrites the first. Student only;
// students can only submit as themselves.
func (svc *Service) Submit(actor user.User, assignmentID int64, file string) error {
	if !actor.IsStudent() {
		return core.NewPermissionError("only students may submit assignments")
	}
	sub := Submission{
		Status:         StatusSubmitted,
		File:           file,
		SubmissionDate: core.FormatDate(nowFunc()),
	}
	if err := svc.repo.UpsertSubmission(assignmentID, actor.ID, sub); err != nil {
		if err == ErrNotFound {
			return core.NewNotFoundError("assignment not found")
		}
		return err
	}
	svc.notifier.Notify("Assignment submitted successfully!")
	return nil
}

// QueryAll returns assignments in insertion order, newest-posted first.
func (svc *Service) QueryAll() ([]Assignment, error) {
	return svc.repo.QueryAllAssignments()
}

func (svc *Service) GetByID(id int64) (Assignment, error) {
	a, err := svc.repo.GetAssignmentByID(id)
	if err != nil {
		if err == ErrNotFound {
			return Assignment{}, core.NewNotFoundError("assignment not found")
		}
		return Assignment{}, err
	}
	return a, nil
}

// CoverageFor reports submitted count against current student enrollment
// for one assignment.
func (svc *Service) CoverageFor(assignmentID int64) (Coverage, error) {
	a, err := svc.GetByID(assignmentID)
	if err != nil {
		return Coverage{}, err
	}
	total, err := svc.students.StudentCount()
	if err != nil {
		return Coverage{}, err
	}
	return Coverage{Submitted: len(a.Submissions), TotalStudents: total}, nil
}
