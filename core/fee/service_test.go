package fee

import (
	"testing"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

type fakeRepo struct {
	table map[string]Fee
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{table: make(map[string]Fee)}
}

func (r *fakeRepo) ReplaceFee(studentID string, f Fee) error {
	r.table[studentID] = f
	return nil
}

func (r *fakeRepo) GetFee(studentID string) (Fee, error) {
	f, ok := r.table[studentID]
	if !ok {
		return Fee{}, ErrNotFound
	}
	return f, nil
}

func (r *fakeRepo) QueryAllFees() (map[string]Fee, error) {
	out := make(map[string]Fee, len(r.table))
	for id, f := range r.table {
		out[id] = f
	}
	return out, nil
}

var (
	admin   = user.User{ID: "admin-1", Role: user.RoleAdmin}
	teacher = user.User{ID: "teacher-1", Role: user.RoleTeacher}
	student = user.User{ID: "student-1", Role: user.RoleStudent}
)

func TestService_Update(t *testing.T) {
	tests := []struct {
		name        string
		actor       user.User
		upd         Update
		want        Fee
		wantPerm    bool
		wantInvalid bool
	}{
		{name: "teacher denied", actor: teacher, upd: Update{Total: "5000", Paid: "0"}, wantPerm: true},
		{name: "student denied", actor: student, upd: Update{Total: "5000", Paid: "0"}, wantPerm: true},
		{name: "pending derived", actor: admin, upd: Update{Total: "5000", Paid: "3000"}, want: Fee{Total: 5000, Paid: 3000, Pending: 2000}},
		{name: "settled", actor: admin, upd: Update{Total: "5000", Paid: "5000"}, want: Fee{Total: 5000, Paid: 5000, Pending: 0}},
		{name: "overpayment allowed", actor: admin, upd: Update{Total: "5000", Paid: "6000"}, want: Fee{Total: 5000, Paid: 6000, Pending: -1000}},
		{name: "total not a number", actor: admin, upd: Update{Total: "50o0", Paid: "0"}, wantInvalid: true},
		{name: "paid not a number", actor: admin, upd: Update{Total: "5000", Paid: "3000.50"}, wantInvalid: true},
		{name: "negative total", actor: admin, upd: Update{Total: "-5000", Paid: "0"}, wantInvalid: true},
		{name: "negative paid", actor: admin, upd: Update{Total: "5000", Paid: "-1"}, wantInvalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo)

			got, err := svc.Update(tt.actor, "student-1", tt.upd)
			if tt.wantPerm {
				if !core.IsPermissionDenied(err) {
					t.Errorf("Update() error = %v, want permission denied", err)
				}
				return
			}
			if tt.wantInvalid {
				if _, ok := err.(*core.ValidationError); !ok {
					t.Errorf("Update() error = %v, want *core.ValidationError", err)
				}
				if len(repo.table) != 0 {
					t.Error("Update() stored a record on invalid input")
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Update() = %+v, want %+v", got, tt.want)
			}
			if stored := repo.table["student-1"]; stored != tt.want {
				t.Errorf("stored = %+v, want %+v", stored, tt.want)
			}
		})
	}
}

func TestService_InitStudent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.InitStudent("student-9"); err != nil {
		t.Fatalf("InitStudent() unexpected error = %v", err)
	}
	want := Fee{Total: DefaultTotal, Paid: 0, Pending: DefaultTotal}
	if got := repo.table["student-9"]; got != want {
		t.Errorf("InitStudent() stored %+v, want %+v", got, want)
	}
}

func TestService_Get(t *testing.T) {
	repo := newFakeRepo()
	repo.table["student-1"] = New(5000, 3000)
	svc := NewService(repo)

	got, err := svc.Get("student-1")
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if want := (Fee{Total: 5000, Paid: 3000, Pending: 2000}); got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}

	if _, err = svc.Get("student-404"); !core.IsNotFound(err) {
		t.Errorf("Get() error = %v, want not found", err)
	}
}

func TestService_Summarize(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	sum, err := svc.Summarize()
	if err != nil {
		t.Fatalf("Summarize() unexpected error = %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("Summarize() = %+v, want zero", sum)
	}

	repo.table["student-1"] = New(5000, 5000)
	repo.table["student-2"] = New(5000, 3000)

	sum, err = svc.Summarize()
	if err != nil {
		t.Fatalf("Summarize() unexpected error = %v", err)
	}
	if want := (Summary{TotalCollected: 8000, TotalPending: 2000}); sum != want {
		t.Errorf("Summarize() = %+v, want %+v", sum, want)
	}
}
