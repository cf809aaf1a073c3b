package fee

import "github.com/gauravw/coachcenter/core"

// DefaultTotal is the fee total seeded for every newly enrolled student.
const DefaultTotal = 5000

// Fee is one student's balance sheet. Pending is always recomputed from
// Total and Paid on write; a negative Pending (overpayment) is valid.
type Fee struct {
	Total   int `json:"total"`
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
}

// New builds a Fee with Pending derived from total and paid.
func New(total, paid int) Fee {
	return Fee{Total: total, Paid: paid, Pending: total - paid}
}

// Update carries caller-supplied amounts as text, the way form input
// arrives. Both must parse as non-negative whole amounts; the stored
// Pending is never trusted from the caller.
type Update struct {
	Total string `json:"total" validate:"required,numeric"`
	Paid  string `json:"paid" validate:"required,numeric"`
}

func (u *Update) Validate() error {
	u.Total = core.CleanString(u.Total)
	u.Paid = core.CleanString(u.Paid)
	return core.Validate.Struct(u)
}

// Summary aggregates all fee records for the admin overview.
type Summary struct {
	TotalCollected int `json:"total_collected"`
	TotalPending   int `json:"total_pending"`
}
