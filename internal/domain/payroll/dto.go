package payroll

import (
	"github.com/opsgrid/workforce-backend-go/internal/pkg/validator"
)

type RunPayrollRequest struct {
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Department *string `json:"department,omitempty"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRunFilter struct {
	Year   *int
	Status *Status
	Page   int
	Limit  int
}
