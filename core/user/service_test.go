package user

import (
	"fmt"
	"testing"

	"github.com/gauravw/coachcenter/core"
)

type fakeRepo struct {
	table map[string]*User
	order []string
	pk    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{table: make(map[string]*User)}
}

func (r *fakeRepo) CreateUser(usr User) (User, error) {
	if usr.ID == "" {
		r.pk++
		usr.ID = fmt.Sprintf("%s-%d", usr.Role, r.pk)
	}
	r.table[usr.ID] = &usr
	r.order = append(r.order, usr.ID)
	return usr, nil
}

func (r *fakeRepo) QueryAllUsers() ([]User, error) {
	users := make([]User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, *r.table[id])
	}
	return users, nil
}

func (r *fakeRepo) GetUserByID(id string) (User, error) {
	if usr, ok := r.table[id]; ok {
		return *usr, nil
	}
	return User{}, ErrNotFound
}

func (r *fakeRepo) UpdateUser(usr User) (User, error) {
	orig, ok := r.table[usr.ID]
	if !ok {
		return User{}, ErrNotFound
	}
	if usr.Name != "" {
		orig.Name = usr.Name
	}
	if usr.Username != "" {
		orig.Username = usr.Username
	}
	if usr.Password != "" {
		orig.Password = usr.Password
	}
	if usr.Role != "" {
		orig.Role = usr.Role
	}
	return *orig, nil
}

// initRecorder records which student IDs were seeded.
type initRecorder struct {
	ids []string
}

func (r *initRecorder) InitStudent(studentID string) error {
	r.ids = append(r.ids, studentID)
	return nil
}

var (
	admin   = User{ID: "admin-1", Role: RoleAdmin}
	teacher = User{ID: "teacher-1", Role: RoleTeacher}
)

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	ledger := &initRecorder{}
	register := &initRecorder{}
	svc := NewService(repo, ledger, register)

	nu := NewUser{Name: "Alex Johnson", Username: "alex", Password: "pwd", Role: RoleStudent}

	if _, err := svc.Create(teacher, nu); !core.IsPermissionDenied(err) {
		t.Errorf("Create() as teacher error = %v, want permission denied", err)
	}

	usr, err := svc.Create(admin, nu)
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}
	if usr.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	// enrolling a student seeds both the fee ledger and the register
	if len(ledger.ids) != 1 || ledger.ids[0] != usr.ID {
		t.Errorf("ledger seeded = %v, want [%s]", ledger.ids, usr.ID)
	}
	if len(register.ids) != 1 || register.ids[0] != usr.ID {
		t.Errorf("register seeded = %v, want [%s]", register.ids, usr.ID)
	}

	if _, err = svc.Create(admin, nu); err != ErrUsernameExists {
		t.Errorf("Create() duplicate error = %v, wantErr %v", err, ErrUsernameExists)
	}

	// non-students get no fee or attendance records
	if _, err = svc.Create(admin, NewUser{Name: "Dr. Reed", Username: "reed", Password: "pwd", Role: RoleTeacher}); err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}
	if len(ledger.ids) != 1 || len(register.ids) != 1 {
		t.Errorf("teacher creation seeded records: ledger %v, register %v", ledger.ids, register.ids)
	}
}

func TestService_Update(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &initRecorder{}, &initRecorder{})

	usr, err := svc.Create(admin, NewUser{Name: "Alex", Username: "alex", Password: "pwd", Role: RoleStudent})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}

	if _, err = svc.Update(teacher, usr.ID, UpdateUser{Name: "Alexa"}); !core.IsPermissionDenied(err) {
		t.Errorf("Update() as teacher error = %v, want permission denied", err)
	}
	if _, err = svc.Update(admin, "student-404", UpdateUser{Name: "Alexa"}); !core.IsNotFound(err) {
		t.Errorf("Update() error = %v, want not found", err)
	}

	updated, err := svc.Update(admin, usr.ID, UpdateUser{Name: "Alexa Johnson"})
	if err != nil {
		t.Fatalf("Update() unexpected error = %v", err)
	}
	if updated.Name != "Alexa Johnson" {
		t.Errorf("Update() Name = %s, want Alexa Johnson", updated.Name)
	}
	// untouched fields keep their values
	if updated.Username != "alex" || updated.Role != RoleStudent {
		t.Errorf("Update() clobbered unset fields: %+v", updated)
	}
}

func TestService_roleFilters(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &initRecorder{}, &initRecorder{})

	seed := []NewUser{
		{Name: "Gaurav", Username: "gaurav", Password: "pwd", Role: RoleAdmin},
		{Name: "Dr. Reed", Username: "reed", Password: "pwd", Role: RoleTeacher},
		{Name: "Alex", Username: "alex", Password: "pwd", Role: RoleStudent},
		{Name: "Maria", Username: "maria", Password: "pwd", Role: RoleStudent},
	}
	for _, nu := range seed {
		if _, err := svc.Create(admin, nu); err != nil {
			t.Fatalf("Create(%s) unexpected error = %v", nu.Username, err)
		}
	}

	students, err := svc.Students()
	if err != nil {
		t.Fatalf("Students() unexpected error = %v", err)
	}
	if len(students) != 2 || students[0].Username != "alex" || students[1].Username != "maria" {
		t.Errorf("Students() = %+v, want alex then maria", students)
	}

	teachers, err := svc.Teachers()
	if err != nil {
		t.Fatalf("Teachers() unexpected error = %v", err)
	}
	if len(teachers) != 1 || teachers[0].Username != "reed" {
		t.Errorf("Teachers() = %+v, want reed", teachers)
	}

	count, err := svc.StudentCount()
	if err != nil {
		t.Fatalf("StudentCount() unexpected error = %v", err)
	}
	if count != 2 {
		t.Errorf("StudentCount() = %d, want 2", count)
	}
}
