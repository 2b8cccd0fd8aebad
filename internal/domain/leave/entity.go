package leave

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Statuses lists every legal leave request status.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

// IsTerminal reports whether the request can no longer change. Decided
// requests are never re-opened.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeUnpaid    LeaveType = "unpaid"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypeOther     LeaveType = "other"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	StartDate time.Time
	EndDate   time.Time
	Days      int

	Reason string

	Status          Status
	DecidedBy       *string
	DecidedAt       *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
