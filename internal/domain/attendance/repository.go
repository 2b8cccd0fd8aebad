package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate is used to prevent double check-in; returns nil
	// when no record exists for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	SetCheckOut(ctx context.Context, id string, checkOut time.Time) (Attendance, error)

	// Correct persists a validated status correction and appends to the
	// audit log.
	Correct(ctx context.Context, id string, status Status, entry AuditEntry) (Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	ListAll(ctx context.Context, from, to time.Time) ([]Attendance, error)

	// ListEmployeesWithoutRecord returns active employee IDs missing a
	// record for the given date; used by the mark-absent cron job.
	ListEmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error)
}
