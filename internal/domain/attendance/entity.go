package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusOnLeave Status = "ON_LEAVE"
)

// Statuses lists every legal attendance status.
var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusOnLeave}

// AuditEntry is one entry of the correction log on an attendance record.
// Corrections require a non-empty note.
type AuditEntry struct {
	Author     string    `json:"author"`
	FromStatus Status    `json:"from_status"`
	ToStatus   Status    `json:"to_status"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// Attendance is one record per employee per calendar day. CheckIn/CheckOut
// times are authoritative; the stored status may be corrected by HR and may
// disagree with the derived lateness signal.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	AuditLog   []AuditEntry
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
