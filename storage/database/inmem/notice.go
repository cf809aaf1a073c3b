package inmemdb

import (
	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/notice"
)

type noticeRepository struct {
	db  *DB
	tbl *noticeTable
}

func NewNoticeRepository(db *DB) notice.Repository {
	return &noticeRepository{db: db, tbl: db.notice}
}

func (repo *noticeRepository) CreateNotice(n notice.Notice) (notice.Notice, error) {
	repo.tbl.Lock()
	repo.tbl.pk++
	n.ID = repo.tbl.pk
	repo.tbl.rows = append([]notice.Notice{n}, repo.tbl.rows...)
	repo.tbl.Unlock()

	repo.db.broadcast("notices", core.ActionCreate)
	return n, nil
}

func (repo *noticeRepository) QueryAllNotices() ([]notice.Notice, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()

	rows := make([]notice.Notice, len(repo.tbl.rows))
	copy(rows, repo.tbl.rows)
	return rows, nil
}

func (repo *noticeRepository) TogglePinNotice(id int64) (notice.Notice, error) {
	repo.tbl.Lock()
	for i := range repo.tbl.rows {
		if repo.tbl.rows[i].ID == id {
			repo.tbl.rows[i].Pinned = !repo.tbl.rows[i].Pinned
			n := repo.tbl.rows[i]
			repo.tbl.Unlock()

			repo.db.broadcast("notices", core.ActionUpdate)
			return n, nil
		}
	}
	repo.tbl.Unlock()
	return notice.Notice{}, notice.ErrNotFound
}

func (repo *noticeRepository) DeleteNotice(id int64) error {
	repo.tbl.Lock()
	for i := range repo.tbl.rows {
		if repo.tbl.rows[i].ID == id {
			repo.tbl.rows = append(repo.tbl.rows[:i], repo.tbl.rows[i+1:]...)
			repo.tbl.Unlock()

			repo.db.broadcast("notices", core.ActionDelete)
			return nil
		}
	}
	repo.tbl.Unlock()
	return notice.ErrNotFound
}
