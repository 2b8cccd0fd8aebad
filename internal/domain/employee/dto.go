package employee

import (
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Department  *string `json:"department,omitempty"`
	Position    *string `json:"position,omitempty"`
	BaseSalary  *string `json:"base_salary,omitempty"` // decimal string
	JoiningDate string  `json:"joining_date"`          // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if _, err := time.Parse("2006-01-02", r.JoiningDate); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	BaseSalary *string `json:"base_salary,omitempty"`
}

type EmployeeFilter struct {
	Department *string
	Status     *EmploymentStatus
	Page       int
	Limit      int
}
