package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/employee"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, user_id, full_name, email, department, position, base_salary,
	joining_date, status, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.FullName, &e.Email, &e.Department, &e.Position, &e.BaseSalary,
		&e.JoiningDate, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (id, user_id, full_name, email, department, position, base_salary, joining_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(r.db.QueryRow(ctx, query,
		uuid.NewString(), emp.UserID, emp.FullName, emp.Email, emp.Department, emp.Position,
		emp.BaseSalary, emp.JoiningDate, emp.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	where := " WHERE deleted_at IS NULL"
	args := []interface{}{}
	argPos := 1

	if filter.Department != nil {
		where += fmt.Sprintf(" AND department = $%d", argPos)
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM employees"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := `SELECT ` + employeeColumns + ` FROM employees` + where +
		fmt.Sprintf(" ORDER BY full_name LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}

	return employees, total, rows.Err()
}

func (r *employeeRepository) ListAll(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL ORDER BY joining_date`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) ListActive(ctx context.Context, department *string) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL AND status = 'active'`
	args := []interface{}{}
	if department != nil {
		query += " AND department = $1"
		args = append(args, *department)
	}
	query += " ORDER BY full_name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var salary *decimal.Decimal
	if req.BaseSalary != nil {
		parsed, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid base_salary: %w", err)
		}
		salary = &parsed
	}

	query := `
		UPDATE employees
		SET full_name = COALESCE($2, full_name),
			department = COALESCE($3, department),
			position = COALESCE($4, position),
			base_salary = COALESCE($5, base_salary),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + employeeColumns

	e, err := scanEmployee(r.db.QueryRow(ctx, query, req.ID, req.FullName, req.Department, req.Position, salary))
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) Resign(ctx context.Context, id string, resignedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE employees
		SET status = 'resigned', updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL AND status = 'active'
	`, id, resignedAt)
	if err != nil {
		return fmt.Errorf("failed to resign employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrAlreadyResigned
	}
	return nil
}
