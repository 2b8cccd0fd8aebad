package attendance

import (
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/pkg/validator"
)

type CorrectAttendanceRequest struct {
	ID        string `json:"-"`
	Status    string `json:"status"`
	AuditNote string `json:"audit_note"`
}

func (r *CorrectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	// The workflow rejects empty notes too; validating here surfaces a
	// field-level message instead of a transition error.
	if validator.IsEmpty(r.AuditNote) {
		errs = append(errs, validator.ValidationError{
			Field:   "audit_note",
			Message: "audit_note is required for corrections",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     *Status
	Page       int
	Limit      int
}
