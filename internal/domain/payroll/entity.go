package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

// Statuses lists every legal payroll run status.
var Statuses = []Status{StatusPending, StatusApproved}

// IsTerminal reports whether the run is final. Approved runs are never
// reverted.
func (s Status) IsTerminal() bool {
	return s == StatusApproved
}

// PayrollRun is one "run payroll" action for a month, optionally scoped to a
// department.
type PayrollRun struct {
	ID             string
	Month          int
	Year           int
	Department     *string
	TotalCost      decimal.Decimal
	EmployeesCount int
	Status         Status
	ApprovedBy     *string
	ApprovedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
