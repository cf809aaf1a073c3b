package inmemdb

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

type userRepository struct {
	db  *DB
	tbl *userTable
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db, tbl: db.user}
}

func (repo *userRepository) query() []user.User {
	users := make([]user.User, 0, len(repo.tbl.order))
	for _, id := range repo.tbl.order {
		users = append(users, *repo.tbl.table[id])
	}
	return users
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.tbl.Lock()
	if usr.ID == "" {
		// role-prefixed random ID; collision-free unlike the timestamp
		// scheme this replaces
		usr.ID = fmt.Sprintf("%s-%s", usr.Role, uuid.NewString())
	}
	repo.tbl.table[usr.ID] = &usr
	repo.tbl.order = append(repo.tbl.order, usr.ID)
	repo.tbl.Unlock()

	repo.db.broadcast("users", core.ActionCreate)
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()
	return repo.query(), nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	repo.tbl.RLock()
	defer repo.tbl.RUnlock()

	if usr, ok := repo.tbl.table[id]; ok {
		return *usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) UpdateUser(usr user.User) (user.User, error) {
	repo.tbl.Lock()

	// only save set fields
	origUsr, ok := repo.tbl.table[usr.ID]
	if !ok {
		repo.tbl.Unlock()
		return user.User{}, user.ErrNotFound
	}
	if usr.Name != "" {
		origUsr.Name = usr.Name
	}
	if usr.Username != "" {
		origUsr.Username = usr.Username
	}
	if usr.Password != "" {
		origUsr.Password = usr.Password
	}
	if usr.Role != "" {
		origUsr.Role = usr.Role
	}
	updated := *origUsr
	repo.tbl.Unlock()

	repo.db.broadcast("users", core.ActionUpdate)
	return updated, nil
}
