package application

import (
	"github.com/opsgrid/workforce-backend-go/internal/pkg/validator"
)

type SubmitApplicationRequest struct {
	JobID         string  `json:"job_id"`
	ApplicantName string  `json:"applicant_name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	ResumeURL     *string `json:"resume_url,omitempty"`
}

func (r *SubmitApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobID) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_id",
			Message: "job_id is required",
		})
	}

	if validator.IsEmpty(r.ApplicantName) {
		errs = append(errs, validator.ValidationError{
			Field:   "applicant_name",
			Message: "applicant_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
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

type AddNoteRequest struct {
	ID   string `json:"-"`
	Body string `json:"body"`
}

func (r *AddNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "note body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplicationFilter struct {
	JobID  *string
	Status *Status
	Page   int
	Limit  int
}
