package postgresql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsgrid/workforce-backend-go/internal/domain/payroll"
)

var payrollColumnNames = []string{
	"id", "month", "year", "department", "total_cost", "employees_count", "status",
	"approved_by", "approved_at", "created_at", "updated_at",
}

func TestPayrollRunRepository_CreateForPeriod(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayrollRunRepository(mock)

	now := time.Now().UTC()
	total := decimal.NewFromInt(4200)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs("payroll_runs:2026-08:").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT EXISTS(.|\n)*FROM payroll_runs(.|\n)*IS NOT DISTINCT FROM \$3`).
		WithArgs(8, 2026, (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO payroll_runs`).
		WithArgs(pgxmock.AnyArg(), 8, 2026, (*string)(nil), total, 3, payroll.StatusPending).
		WillReturnRows(pgxmock.NewRows(payrollColumnNames).
			AddRow("run-1", 8, 2026, nil, total, 3, string(payroll.StatusPending), nil, nil, now, now))
	mock.ExpectCommit()

	created, err := repo.CreateForPeriod(context.Background(), payroll.PayrollRun{
		Month:          8,
		Year:           2026,
		TotalCost:      total,
		EmployeesCount: 3,
		Status:         payroll.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "run-1", created.ID)
	assert.Equal(t, payroll.StatusPending, created.Status)
	assert.True(t, total.Equal(created.TotalCost))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRunRepository_CreateForPeriod_PeriodTaken(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayrollRunRepository(mock)

	dept := "Engineering"

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs("payroll_runs:2026-08:Engineering").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT EXISTS(.|\n)*FROM payroll_runs`).
		WithArgs(8, 2026, &dept).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err = repo.CreateForPeriod(context.Background(), payroll.PayrollRun{
		Month:      8,
		Year:       2026,
		Department: &dept,
		Status:     payroll.StatusPending,
	})
	assert.ErrorIs(t, err, payroll.ErrRunAlreadyExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
