package response

import (
	"errors"
	"net/http"

	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	"github.com/opsgrid/workforce-backend-go/internal/domain/auth"
	"github.com/opsgrid/workforce-backend-go/internal/domain/employee"
	"github.com/opsgrid/workforce-backend-go/internal/domain/job"
	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
	"github.com/opsgrid/workforce-backend-go/internal/domain/leave"
	"github.com/opsgrid/workforce-backend-go/internal/domain/payroll"
	"github.com/opsgrid/workforce-backend-go/internal/domain/resource"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/domain/workflow"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation errors carry their own details map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Workflow errors
	case errors.Is(err, workflow.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, workflow.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, workflow.ErrAuditNoteRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, workflow.ErrUnknownStatus):
		BadRequest(w, err.Error(), nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthDisabled):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Recruitment domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrJobClosed):
		Conflict(w, "Job posting is closed")
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrAlreadyResigned):
		Conflict(w, "Employee has already resigned")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "You have not checked in yet")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunAlreadyExists):
		Conflict(w, "Payroll already run for this period")
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "No active employees to run payroll for", nil)

	// Lead domain errors
	case errors.Is(err, lead.ErrLeadNotFound):
		NotFound(w, "Lead not found")

	// Resource domain errors
	case errors.Is(err, resource.ErrResourceNotFound):
		NotFound(w, "Resource not found")
	case errors.Is(err, resource.ErrSlugExists):
		Conflict(w, "Slug already in use")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
