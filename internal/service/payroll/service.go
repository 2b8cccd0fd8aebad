package payroll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/opsgrid/workforce-backend-go/internal/domain/employee"
	"github.com/opsgrid/workforce-backend-go/internal/domain/payroll"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/domain/workflow"
)

type PayrollService interface {
	Run(ctx context.Context, actor user.Actor, req payroll.RunPayrollRequest) (payroll.PayrollRun, error)
	Approve(ctx context.Context, actor user.Actor, id string) (payroll.PayrollRun, error)
	Get(ctx context.Context, id string) (payroll.PayrollRun, error)
	List(ctx context.Context, filter payroll.PayrollRunFilter) ([]payroll.PayrollRun, int64, error)
}

type payrollService struct {
	runs      payroll.PayrollRunRepository
	employees employee.EmployeeRepository
}

func NewPayrollService(runs payroll.PayrollRunRepository, employees employee.EmployeeRepository) PayrollService {
	return &payrollService{
		runs:      runs,
		employees: employees,
	}
}

// Run creates a PENDING payroll run for the period. Total cost sums the base
// salaries of active employees in scope; employees without a salary on file
// still count toward the headcount.
func (s *payrollService) Run(ctx context.Context, actor user.Actor, req payroll.RunPayrollRequest) (payroll.PayrollRun, error) {
	if !user.HasPermission(actor.Role, user.PermissionPayrollRun) {
		return payroll.PayrollRun{}, workflow.ErrForbidden
	}

	exists, err := s.runs.ExistsForPeriod(ctx, req.Month, req.Year, req.Department)
	if err != nil {
		return payroll.PayrollRun{}, err
	}
	if exists {
		return payroll.PayrollRun{}, payroll.ErrRunAlreadyExists
	}

	active, err := s.employees.ListActive(ctx, req.Department)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	if len(active) == 0 {
		return payroll.PayrollRun{}, payroll.ErrNoActiveEmployees
	}

	total := decimal.Zero
	for _, emp := range active {
		if emp.BaseSalary != nil {
			total = total.Add(*emp.BaseSalary)
		}
	}

	run := payroll.PayrollRun{
		Month:          req.Month,
		Year:           req.Year,
		Department:     req.Department,
		TotalCost:      total,
		EmployeesCount: len(active),
		Status:         payroll.StatusPending,
	}

	// CreateForPeriod re-checks the period atomically; the check above is
	// only a fast path and a concurrent run can still lose the race.
	created, err := s.runs.CreateForPeriod(ctx, run)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return created, nil
}

// Approve moves a pending run to APPROVED. Approved runs are terminal.
func (s *payrollService) Approve(ctx context.Context, actor user.Actor, id string) (payroll.PayrollRun, error) {
	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	next, err := workflow.Transition(workflow.Request{
		Entity:  workflow.EntityPayroll,
		Current: string(run.Status),
		Target:  string(payroll.StatusApproved),
		Role:    actor.Role,
	})
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	if next == string(run.Status) {
		return run, nil
	}

	approved, err := s.runs.Approve(ctx, run.ID, actor.UserID)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to approve payroll run: %w", err)
	}

	return approved, nil
}

func (s *payrollService) Get(ctx context.Context, id string) (payroll.PayrollRun, error) {
	return s.runs.GetByID(ctx, id)
}

func (s *payrollService) List(ctx context.Context, filter payroll.PayrollRunFilter) ([]payroll.PayrollRun, int64, error) {
	return s.runs.List(ctx, filter)
}
