package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/domain/employee"
	"github.com/opsgrid/workforce-backend-go/internal/domain/leave"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/domain/workflow"
)

type LeaveService interface {
	Create(ctx context.Context, actor user.Actor, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error)
	Get(ctx context.Context, actor user.Actor, id string) (leave.LeaveRequest, error)
	List(ctx context.Context, actor user.Actor, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error)
	Decide(ctx context.Context, actor user.Actor, req leave.DecideLeaveRequestRequest) (leave.LeaveRequest, error)
	Cancel(ctx context.Context, actor user.Actor, id string) (leave.LeaveRequest, error)
}

type leaveService struct {
	requests  leave.LeaveRequestRepository
	employees employee.EmployeeRepository
}

func NewLeaveService(requests leave.LeaveRequestRepository, employees employee.EmployeeRepository) LeaveService {
	return &leaveService{
		requests:  requests,
		employees: employees,
	}
}

// Create submits a leave request in PENDING for the actor's own employee
// record. Days is inclusive of both end dates.
func (s *leaveService) Create(ctx context.Context, actor user.Actor, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	emp, err := s.employees.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to resolve employee for user: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1

	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// Get returns one request; employees can only read their own.
func (s *leaveService) Get(ctx context.Context, actor user.Actor, id string) (leave.LeaveRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if actor.Role == user.RoleEmployee {
		emp, err := s.employees.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to resolve employee for user: %w", err)
		}
		if request.EmployeeID != emp.ID {
			return leave.LeaveRequest{}, leave.ErrNotRequestOwner
		}
	}

	return request, nil
}

// List scopes employees down to their own requests regardless of the filter
// they sent.
func (s *leaveService) List(ctx context.Context, actor user.Actor, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	if actor.Role == user.RoleEmployee {
		emp, err := s.employees.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to resolve employee for user: %w", err)
		}
		filter.EmployeeID = &emp.ID
	}

	return s.requests.List(ctx, filter)
}

// Decide approves or rejects a pending request. The transition check runs
// against the stored status, so a request decided in another tab fails with
// an invalid transition rather than silently overwriting.
func (s *leaveService) Decide(ctx context.Context, actor user.Actor, req leave.DecideLeaveRequestRequest) (leave.LeaveRequest, error) {
	request, err := s.requests.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	next, err := workflow.Transition(workflow.Request{
		Entity:  workflow.EntityLeave,
		Current: string(request.Status),
		Target:  req.Status,
		Role:    actor.Role,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if next == string(request.Status) {
		return request, nil
	}

	update := leave.UpdateLeaveStatus{
		ID:        request.ID,
		Status:    leave.Status(next),
		DecidedBy: &actor.UserID,
	}
	if leave.Status(next) == leave.StatusRejected {
		update.RejectionReason = req.RejectionReason
	}

	updated, err := s.requests.UpdateStatus(ctx, update)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to decide leave request: %w", err)
	}

	return updated, nil
}

// Cancel lets the requester withdraw a still-pending request. Only the
// owning employee may cancel; approvers use Decide.
func (s *leaveService) Cancel(ctx context.Context, actor user.Actor, id string) (leave.LeaveRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	emp, err := s.employees.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to resolve employee for user: %w", err)
	}
	if request.EmployeeID != emp.ID {
		return leave.LeaveRequest{}, leave.ErrNotRequestOwner
	}

	next, err := workflow.Transition(workflow.Request{
		Entity:  workflow.EntityLeave,
		Current: string(request.Status),
		Target:  string(leave.StatusCancelled),
		Role:    actor.Role,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if next == string(request.Status) {
		return request, nil
	}

	updated, err := s.requests.UpdateStatus(ctx, leave.UpdateLeaveStatus{
		ID:        request.ID,
		Status:    leave.Status(next),
		DecidedBy: &actor.UserID,
	})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to cancel leave request: %w", err)
	}

	return updated, nil
}
