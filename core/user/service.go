package user

import (
	"errors"

	"github.com/gauravw/coachcenter/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrUsernameExists = errors.New("a user with this username already exists")
)

type (
	Repository interface {
		CreateUser(usr User) (User, error)
		// QueryAllUsers returns all users in their original insertion order.
		QueryAllUsers() ([]User, error)
		GetUserByID(id string) (User, error)
		// UpdateUser merges the set (non-zero) fields of usr into the stored
		// record and returns the result.
		UpdateUser(usr User) (User, error)
	}

	// StudentLedger seeds billing records for a newly enrolled student.
	StudentLedger interface {
		InitStudent(studentID string) error
	}

	// StudentRegister seeds attendance records for a newly enrolled student.
	StudentRegister interface {
		InitStudent(studentID string) error
	}

	Service struct {
		repo     Repository
		ledger   StudentLedger
		register StudentRegister
	}
)

func NewService(repo Repository, ledger StudentLedger, register StudentRegister) *Service {
	return &Service{repo: repo, ledger: ledger, register: register}
}

// Create adds a new user account. Admin only. Creating a student also
// seeds that student's fee record and attendance register.
func (svc *Service) Create(actor User, nu NewUser) (User, error) {
	if !actor.IsAdmin() {
		return User{}, core.NewPermissionError("only admins may create users")
	}
	existing, err := svc.repo.QueryAllUsers()
	if err != nil {
		return User{}, err
	}
	for _, u := range existing {
		if u.Username == nu.Username {
			return User{}, ErrUsernameExists
		}
	}
	usr := User{
		Username: nu.Username,
		Password: nu.Password,
		Role:     nu.Role,
		Name:     nu.Name,
	}
	usr, err = svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}
	if usr.IsStudent() {
		if err = svc.ledger.InitStudent(usr.ID); err != nil {
			return User{}, err
		}
		if err = svc.register.InitStudent(usr.ID); err != nil {
			return User{}, err
		}
	}
	return usr, nil
}

// Update merges the set fields of uu into the user identified by id.
// Admin only. Fails with core.NotFoundError for an unknown id.
func (svc *Service) Update(actor User, id string, uu UpdateUser) (User, error) {
	if !actor.IsAdmin() {
		return User{}, core.NewPermissionError("only admins may update users")
	}
	usr := User{
		ID:       id,
		Name:     uu.Name,
		Username: uu.Username,
		Password: uu.Password,
		Role:     uu.Role,
	}
	updated, err := svc.repo.UpdateUser(usr)
	if err != nil {
		if err == ErrNotFound {
			return User{}, core.NewNotFoundError("user not found")
		}
		return User{}, err
	}
	return updated, nil
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

// Students returns all users with the student role, in insertion order.
func (svc *Service) Students() ([]User, error) {
	return svc.filterByRole(RoleStudent)
}

// Teachers returns all users with the teacher role, in insertion order.
func (svc *Service) Teachers() ([]User, error) {
	return svc.filterByRole(RoleTeacher)
}

// StudentCount reports the current number of enrolled students.
func (svc *Service) StudentCount() (int, error) {
	students, err := svc.Students()
	if err != nil {
		return 0, err
	}
	return len(students), nil
}

func (svc *Service) filterByRole(role string) ([]User, error) {
	users, err := svc.repo.QueryAllUsers()
	if err != nil {
		return nil, err
	}
	matched := make([]User, 0, len(users))
	for _, usr := range users {
		if usr.Role == role {
			matched = append(matched, usr)
		}
	}
	return matched, nil
}
