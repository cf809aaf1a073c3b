package inmemdb

import (
	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/assignment"
)

type assignmentRepository struct {
	db  *DB
	tbl *assignmentTable
}

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db, tbl: db.assignment}
}

func copyAssignment(a assignment.Assignment) assignment.Assignment {
	subs := make(map[string]assignment.Submission, len(a.Submissions))
	for id, sub := range a.Submissions {
		subs[id] = sub
	}
	a.Submissions = subs
	return a
}

func (repo *assignmentRepository) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	repo.tbl.Lock()
	repo.tbl.pk++
	a.ID = repo.tbl.pk
	if a.Submissions == nil {
		a.Submissions = make(map[string]assignment.Submission)
	}
	repo.tbl.rows = append([]assignment.Assignment{a}, repo.tbl.rows...)
	a = copyAssignment(a)
	repo.tbl.Unlock()

	repo.db.broadcast("assignments", core.ActionCreate)
	return a, nil
}

func (repo *assignmentRepository) QueryAllAssignments() ([]assignment.Assignment, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()

	rows := make([]assignment.Assignment, 0, len(repo.tbl.rows))
	for _, a := range repo.tbl.rows {
		rows = append(rows, copyAssignment(a))
	}
	return rows, nil
}

func (repo *assignmentRepository) GetAssignmentByID(id int64) (assignment.Assignment, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()

	for _, a := range repo.tbl.rows {
		if a.ID == id {
			return copyAssignment(a), nil
		}
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) UpsertSubmission(assignmentID int64, studentID string, sub assignment.Submission) error {
	repo.tbl.Lock()
	for i := range repo.tbl.rows {
		if repo.tbl.rows[i].ID == assignmentID {
			repo.tbl.rows[i].Submissions[studentID] = sub
			repo.tbl.Unlock()

			repo.db.broadcast("assignments", core.ActionUpdate)
			return nil
		}
	}
	repo.tbl.Unlock()
	return assignment.ErrNotFound
}
