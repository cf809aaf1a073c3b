package fee

import (
	"errors"
	"strconv"

	"github.com/gauravw/coachcenter/core"
	"github.com/gauravw/coachcenter/core/user"
)

var (
	// errors
	ErrNotFound       = errors.New("fee record not found")
	errNotWholeAmount = errors.New("amount must be a whole number")
	errNegativeAmount = errors.New("amount must not be negative")
)

type (
	Repository interface {
		// ReplaceFee upserts the student's fee record wholesale.
		ReplaceFee(studentID string, f Fee) error
		GetFee(studentID string) (Fee, error)
		// QueryAllFees returns all fee records keyed by student ID.
		QueryAllFees() (map[string]Fee, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Update parses the supplied amounts and replaces the student's fee
// record with Pending recomputed as Total - Paid. Admin only. Negative
// Pending (overpayment) is representable.
func (svc *Service) Update(actor user.User, studentID string, upd Update) (Fee, error) {
	if !actor.IsAdmin() {
		return Fee{}, core.NewPermissionError("only admins may update fees")
	}
	total, err := parseAmount("total", upd.Total)
	if err != nil {
		return Fee{}, err
	}
	paid, err := parseAmount("paid", upd.Paid)
	if err != nil {
		return Fee{}, err
	}
	f := New(total, paid)
	if err := svc.repo.ReplaceFee(studentID, f); err != nil {
		return Fee{}, err
	}
	return f, nil
}

// InitStudent seeds the default fee record for a newly enrolled student.
func (svc *Service) InitStudent(studentID string) error {
	return svc.repo.ReplaceFee(studentID, New(DefaultTotal, 0))
}

func (svc *Service) Get(studentID string) (Fee, error) {
	f, err := svc.repo.GetFee(studentID)
	if err != nil {
		if err == ErrNotFound {
			return Fee{}, core.NewNotFoundError("fee record not found")
		}
		return Fee{}, err
	}
	return f, nil
}

func (svc *Service) QueryAll() (map[string]Fee, error) {
	return svc.repo.QueryAllFees()
}

// Summarize totals the paid and pending amounts over all fee records.
func (svc *Service) Summarize() (Summary, error) {
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, f := range fees {
		sum.TotalCollected += f.Paid
		sum.TotalPending += f.Pending
	}
	return sum, nil
}

// parseAmount rejects anything but a non-negative whole number so a bad
// caller value can never corrupt the Pending = Total - Paid invariant.
func parseAmount(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, core.NewValidationError(errNotWholeAmount, core.FieldError{Field: field, Error: errNotWholeAmount.Error()})
	}
	if n < 0 {
		return 0, core.NewValidationError(errNegativeAmount, core.FieldError{Field: field, Error: errNegativeAmount.Error()})
	}
	return n, nil
}
