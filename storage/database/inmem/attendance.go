package inmemdb

import (
	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/attendance"
)

type attendanceRepository struct {
	db  *DB
	tbl *attendanceTable
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db, tbl: db.attendance}
}

func (repo *attendanceRepository) UpsertAttendance(studentID, date string, status attendance.Status) error {
	repo.tbl.Lock()
	rec, ok := repo.tbl.table[studentID]
	if !ok {
		rec = make(map[string]attendance.Status)
		repo.tbl.table[studentID] = rec
	}
	rec[date] = status
	repo.tbl.Unlock()

	repo.db.broadcast("attendance", core.ActionUpdate)
	return nil
}

func (repo *attendanceRepository) GetStudentAttendance(studentID string) (map[string]attendance.Status, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()

	rec := make(map[string]attendance.Status, len(repo.tbl.table[studentID]))
	for date, status := range repo.tbl.table[studentID] {
		rec[date] = status
	}
	return rec, nil
}

func (repo *attendanceRepository) InitAttendance(studentID string) error {
	repo.tbl.Lock()
	if _, ok := repo.tbl.table[studentID]; !ok {
		repo.tbl.table[studentID] = make(map[string]attendance.Status)
	}
	repo.tbl.Unlock()

	repo.db.broadcast("attendance", core.ActionCreate)
	return nil
}
