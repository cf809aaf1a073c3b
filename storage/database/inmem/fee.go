package inmemdb

import (
	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/fee"
)

type feeRepository struct {
	db  *DB
	tbl *feeTable
}

func NewFeeRepository(db *DB) fee.Repository {
	return &feeRepository{db: db, tbl: db.fee}
}

func (repo *feeRepository) ReplaceFee(studentID string, f fee.Fee) error {
	repo.tbl.Lock()
	repo.tbl.table[studentID] = f
	repo.tbl.Unlock()

	repo.db.broadcast("fees", core.ActionUpdate)
	return nil
}

func (repo *feeRepository) GetFee(studentID string) (fee.Fee, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()

	if f, ok := repo.tbl.table[studentID]; ok {
		return f, nil
	}
	return fee.Fee{}, fee.ErrNotFound
}

func (repo *feeRepository) QueryAllFees() (map[string]fee.Fee, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()

	fees := make(map[string]fee.Fee, len(repo.tbl.table))
	for id, f := range repo.tbl.table {
		fees[id] = f
	}
	return fees, nil
}
