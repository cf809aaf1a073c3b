package inmemdb

import (
	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/video"
)

type videoRepository struct {
	db  *DB
	tbl *videoTable
}

func NewVideoRepository(db *DB) video.Repository {
	return &videoRepository{db: db, tbl: db.video}
}

func (repo *videoRepository) CreateVideo(v video.Video) (video.Video, error) {
	repo.tbl.Lock()
	repo.tbl.pk++
	v.ID = repo.tbl.pk
	repo.tbl.rows = append([]video.Video{v}, repo.tbl.rows...)
	repo.tbl.Unlock()

	repo.db.broadcast("videos", core.ActionCreate)
	return v, nil
}

func (repo *videoRepository) QueryAllVideos() ([]video.Video, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()

	rows := make([]video.Video, len(repo.tbl.rows))
	copy(rows, repo.tbl.rows)
	return rows, nil
}
