package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status, a.audit_log,
	a.created_at, a.updated_at, e.full_name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var record attendance.Attendance
	var auditLog []byte

	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.CheckIn, &record.CheckOut,
		&record.Status, &auditLog, &record.CreatedAt, &record.UpdatedAt, &record.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	if len(auditLog) > 0 {
		if err := json.Unmarshal(auditLog, &record.AuditLog); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to decode audit log: %w", err)
		}
	}

	return record, nil
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	query := `
		WITH inserted AS (
			INSERT INTO attendance_records (id, employee_id, date, check_in, check_out, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM inserted a
		JOIN employees e ON e.id = a.employee_id
	`

	created, err := scanAttendance(r.db.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Date,
		record.CheckIn, record.CheckOut, record.Status,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	record, err := scanAttendance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return record, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`

	record, err := scanAttendance(r.db.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return &record, nil
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	query := `
		WITH updated AS (
			UPDATE attendance_records
			SET check_out = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM updated a
		JOIN employees e ON e.id = a.employee_id
	`

	record, err := scanAttendance(r.db.QueryRow(ctx, query, id, checkOut))
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check out: %w", err)
	}

	return record, nil
}

func (r *attendanceRepository) Correct(ctx context.Context, id string, status attendance.Status, entry attendance.AuditEntry) (attendance.Attendance, error) {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to encode audit entry: %w", err)
	}

	query := `
		WITH updated AS (
			UPDATE attendance_records
			SET status = $2,
				audit_log = COALESCE(audit_log, '[]'::jsonb) || jsonb_build_array($3::jsonb),
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM updated a
		JOIN employees e ON e.id = a.employee_id
	`

	record, err := scanAttendance(r.db.QueryRow(ctx, query, id, status, entryJSON))
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to correct attendance record: %w", err)
	}

	return record, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.DateTo)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM attendance_records a"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id` + where +
		fmt.Sprintf(" ORDER BY a.date DESC, a.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	return records, total, rows.Err()
}

func (r *attendanceRepository) ListAll(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) ListEmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	query := `
		SELECT e.id
		FROM employees e
		WHERE e.status = 'active' AND e.deleted_at IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM attendance_records a
				WHERE a.employee_id = e.id AND a.date = $1
			)
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without attendance: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
