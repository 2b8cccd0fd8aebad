package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/payroll"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
)

type payrollRunRepository struct {
	db database.TxQuerier
}

func NewPayrollRunRepository(db database.TxQuerier) payroll.PayrollRunRepository {
	return &payrollRunRepository{db: db}
}

const payrollColumns = `
	id, month, year, department, total_cost, employees_count, status,
	approved_by, approved_at, created_at, updated_at
`

func scanPayrollRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	err := row.Scan(
		&run.ID, &run.Month, &run.Year, &run.Department, &run.TotalCost, &run.EmployeesCount,
		&run.Status, &run.ApprovedBy, &run.ApprovedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.PayrollRun{}, err
	}
	return run, nil
}

// CreateForPeriod re-checks the period and inserts inside one transaction
// holding an advisory lock on the period key, so two concurrent runs for the
// same period serialize; the loser gets ErrRunAlreadyExists. The unique index
// payroll_runs_period_key backs the same rule at the schema level.
func (r *payrollRunRepository) CreateForPeriod(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	var created payroll.PayrollRun

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		dept := ""
		if run.Department != nil {
			dept = *run.Department
		}
		lockKey := fmt.Sprintf("payroll_runs:%d-%02d:%s", run.Year, run.Month, dept)
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
			return fmt.Errorf("failed to lock payroll period: %w", err)
		}

		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM payroll_runs
				WHERE month = $1 AND year = $2 AND department IS NOT DISTINCT FROM $3
			)
		`, run.Month, run.Year, run.Department).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check payroll period: %w", err)
		}
		if exists {
			return payroll.ErrRunAlreadyExists
		}

		query := `
			INSERT INTO payroll_runs (id, month, year, department, total_cost, employees_count, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + payrollColumns

		created, err = scanPayrollRun(tx.QueryRow(ctx, query,
			uuid.NewString(), run.Month, run.Year, run.Department,
			run.TotalCost, run.EmployeesCount, run.Status,
		))
		if err != nil {
			if strings.Contains(err.Error(), "payroll_runs_period_key") {
				return payroll.ErrRunAlreadyExists
			}
			return fmt.Errorf("failed to create payroll run: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return created, nil
}

func (r *payrollRunRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_runs WHERE id = $1`

	run, err := scanPayrollRun(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == payroll.ErrPayrollRunNotFound {
			return payroll.PayrollRun{}, err
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}
	return run, nil
}

func (r *payrollRunRepository) List(ctx context.Context, filter payroll.PayrollRunFilter) ([]payroll.PayrollRun, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Year != nil {
		where += fmt.Sprintf(" AND year = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM payroll_runs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := `SELECT ` + payrollColumns + ` FROM payroll_runs` + where +
		fmt.Sprintf(" ORDER BY year DESC, month DESC, created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, 0, err
		}
		runs = append(runs, run)
	}

	return runs, total, rows.Err()
}

func (r *payrollRunRepository) ListAll(ctx context.Context) ([]payroll.PayrollRun, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_runs ORDER BY year, month`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *payrollRunRepository) ExistsForPeriod(ctx context.Context, month, year int, department *string) (bool, error) {
	// department IS NOT DISTINCT FROM treats two NULLs as equal, so a
	// company-wide run and a department run for the same month can coexist.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_runs
			WHERE month = $1 AND year = $2 AND department IS NOT DISTINCT FROM $3
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, month, year, department).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}
	return exists, nil
}

func (r *payrollRunRepository) Approve(ctx context.Context, id string, approvedBy string) (payroll.PayrollRun, error) {
	query := `
		UPDATE payroll_runs
		SET status = $2, approved_by = $3, approved_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + payrollColumns

	run, err := scanPayrollRun(r.db.QueryRow(ctx, query, id, payroll.StatusApproved, approvedBy))
	if err != nil {
		if err == payroll.ErrPayrollRunNotFound {
			return payroll.PayrollRun{}, err
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to approve payroll run: %w", err)
	}

	return run, nil
}
