package payroll

import (
	"context"
)

type PayrollRunRepository interface {
	// CreateForPeriod inserts a run only if the period is still free; the
	// check and the insert are atomic. Returns ErrRunAlreadyExists when a
	// run for the same month, year and department scope already exists.
	CreateForPeriod(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetByID(ctx context.Context, id string) (PayrollRun, error)
	List(ctx context.Context, filter PayrollRunFilter) ([]PayrollRun, int64, error)
	ListAll(ctx context.Context) ([]PayrollRun, error)
	ExistsForPeriod(ctx context.Context, month, year int, department *string) (bool, error)
	Approve(ctx context.Context, id string, approvedBy string) (PayrollRun, error)
}
