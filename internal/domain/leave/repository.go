package leave

import (
	"context"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, req UpdateLeaveStatus) (LeaveRequest, error)
}

// UpdateLeaveStatus carries the persisted outcome of a validated transition.
type UpdateLeaveStatus struct {
	ID              string
	Status          Status
	DecidedBy       *string
	RejectionReason *string
}
