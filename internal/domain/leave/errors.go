package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrNotRequestOwner              = errors.New("leave request belongs to another employee")
	ErrInvalidDateRange             = errors.New("end date must not be before start date")
)
