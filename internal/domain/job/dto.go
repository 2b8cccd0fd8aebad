package job

import (
	"github.com/opsgrid/workforce-backend-go/internal/pkg/validator"
)

type CreateJobRequest struct {
	Title          string  `json:"title"`
	Department     *string `json:"department,omitempty"`
	Location       *string `json:"location,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	Description    string  `json:"description"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobFilter struct {
	OpenOnly   bool
	Department *string
	Page       int
	Limit      int
}
