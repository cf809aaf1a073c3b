package inmemdb

import (
	"sync"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/assignment"
	"github.com/gauravw/coachcenter/core/attendance"
	"github.com/gauravw/coachcenter/core/fee"
	"github.com/gauravw/coachcenter/core/notice"
	"github.com/gauravw/coachcenter/core/user"
	"github.com/gauravw/coachcenter/core/video"
)

type (
	// DB is the volatile single-process entity store. All domain
	// collections live here for the duration of the process; nothing is
	// persisted.
	DB struct {
		user       *userTable
		notice     *noticeTable
		attendance *attendanceTable
		assignment *assignmentTable
		video      *videoTable
		fee        *feeTable

		obsMu     sync.RWMutex
		observers []core.StoreObserver
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
		order []string // insertion order; login iteration depends on it
	}

	noticeTable struct {
		sync.RWMutex
		rows []notice.Notice // newest-posted first
		pk   int64
	}

	attendanceTable struct {
		sync.RWMutex
		table map[string]map[string]attendance.Status // studentID -> date -> status
	}

	assignmentTable struct {
		sync.RWMutex
		rows []assignment.Assignment // newest-posted first
		pk   int64
	}

	videoTable struct {
		sync.RWMutex
		rows []video.Video // newest-added first
		pk   int64
	}

	feeTable struct {
		sync.RWMutex
		table map[string]fee.Fee // keyed by student ID
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		notice:     &noticeTable{},
		attendance: &attendanceTable{table: make(map[string]map[string]attendance.Status)},
		assignment: &assignmentTable{},
		video:      &videoTable{},
		fee:        &feeTable{table: make(map[string]fee.Fee)},
	}
	return db, nil
}

// Observe registers fn to be called synchronously after every store
// mutation, outside the table locks. Observers re-derive their own views.
func (db *DB) Observe(fn core.StoreObserver) {
	db.obsMu.Lock()
	db.observers = append(db.observers, fn)
	db.obsMu.Unlock()
}

func (db *DB) broadcast(entity, action string) {
	db.obsMu.RLock()
	observers := db.observers
	db.obsMu.RUnlock()

	evt := core.StoreEvent{Entity: entity, Action: action}
	for _, fn := range observers {
		fn(evt)
	}
}
