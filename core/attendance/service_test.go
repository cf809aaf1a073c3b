package attendance

import (
	"testing"
	"time"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

type fakeRepo struct {
	table map[string]map[string]Status
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{table: make(map[string]map[string]Status)}
}

func (r *fakeRepo) UpsertAttendance(studentID, date string, status Status) error {
	if r.table[studentID] == nil {
		r.table[studentID] = make(map[string]Status)
	}
	r.table[studentID][date] = status
	return nil
}

func (r *fakeRepo) GetStudentAttendance(studentID string) (map[string]Status, error) {
	rec := make(map[string]Status, len(r.table[studentID]))
	for date, status := range r.table[studentID] {
		rec[date] = status
	}
	return rec, nil
}

func (r *fakeRepo) InitAttendance(studentID string) error {
	if r.table[studentID] == nil {
		r.table[studentID] = make(map[string]Status)
	}
	return nil
}

var (
	teacher = user.User{ID: "teacher-1", Role: user.RoleTeacher}
	student = user.User{ID: "student-1", Role: user.RoleStudent}
)

func TestService_Mark(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	m := Mark{StudentID: "student-1", Date: "2023-11-01", Status: StatusPresent}

	if err := svc.Mark(student, m); !core.IsPermissionDenied(err) {
		t.Errorf("Mark() as student error = %v, want permission denied", err)
	}
	if err := svc.Mark(user.User{ID: "admin-1", Role: user.RoleAdmin}, m); !core.IsPermissionDenied(err) {
		t.Errorf("Mark() as admin error = %v, want permission denied", err)
	}

	if err := svc.Mark(teacher, m); err != nil {
		t.Fatalf("Mark() unexpected error = %v", err)
	}
	// a later mark for the same day overwrites the first
	m.Status = StatusAbsent
	if err := svc.Mark(teacher, m); err != nil {
		t.Fatalf("Mark() unexpected error = %v", err)
	}

	rec, err := svc.ForStudent("student-1")
	if err != nil {
		t.Fatalf("ForStudent() unexpected error = %v", err)
	}
	if len(rec) != 1 {
		t.Fatalf("ForStudent() len = %d, want 1", len(rec))
	}
	if rec["2023-11-01"] != StatusAbsent {
		t.Errorf("ForStudent()[2023-11-01] = %s, want %s", rec["2023-11-01"], StatusAbsent)
	}
}

func TestService_MonthlyReport(t *testing.T) {
	// Wed 2023-11-15; the first Sundays of that month are the 5th and 12th
	now := time.Date(2023, time.November, 15, 10, 0, 0, 0, time.UTC)
	origNow := nowFunc
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = origNow }()

	tests := []struct {
		name  string
		marks map[string]Status
		want  Report
	}{
		{
			name:  "no recorded days",
			marks: nil,
			want:  Report{Present: 0, Total: 0, Percentage: 100, Class: ClassGood},
		},
		{
			name: "exactly at threshold",
			marks: map[string]Status{
				"2023-11-01": StatusPresent,
				"2023-11-02": StatusPresent,
				"2023-11-03": StatusPresent,
				"2023-11-04": StatusAbsent,
			},
			want: Report{Present: 3, Total: 4, Percentage: 75, Class: ClassGood},
		},
		{
			name: "below threshold",
			marks: map[string]Status{
				"2023-11-01": StatusPresent,
				"2023-11-02": StatusAbsent,
				"2023-11-03": StatusAbsent,
			},
			want: Report{Present: 1, Total: 3, Percentage: 33, Class: ClassLow},
		},
		{
			name: "sunday marks are ignored",
			marks: map[string]Status{
				"2023-11-05": StatusAbsent, // Sunday
				"2023-11-06": StatusPresent,
			},
			want: Report{Present: 1, Total: 1, Percentage: 100, Class: ClassGood},
		},
		{
			name: "future marks are ignored",
			marks: map[string]Status{
				"2023-11-14": StatusPresent,
				"2023-11-20": StatusAbsent, // past today
			},
			want: Report{Present: 1, Total: 1, Percentage: 100, Class: ClassGood},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.table["student-1"] = tt.marks
			svc := NewService(repo)

			got, err := svc.MonthlyReport("student-1")
			if err != nil {
				t.Fatalf("MonthlyReport() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MonthlyReport() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
