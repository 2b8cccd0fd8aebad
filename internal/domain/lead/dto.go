package lead

import (
	"github.com/opsgrid/workforce-backend-go/internal/pkg/validator"
)

type CaptureLeadRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Requirement string  `json:"requirement"`
}

func (r *CaptureLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Requirement) {
		errs = append(errs, validator.ValidationError{
			Field:   "requirement",
			Message: "requirement is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeadStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateLeadStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeadItem is a list-view lead with the derived staleness flag attached.
type LeadItem struct {
	Lead
	IsStale bool `json:"is_stale"`
}

type LeadFilter struct {
	Status *Status
	Page   int
	Limit  int
}
