package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees creates ABSENT records for active employees with no
// attendance record for yesterday. Idempotent: employees already covered for
// the day are skipped, so the job can run on every tick and still backfills
// after downtime.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := time.Now()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	missing, err := j.attendanceRepo.ListEmployeesWithoutRecord(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list employees without attendance: %w", err)
	}

	if len(missing) == 0 {
		return nil
	}

	marked := 0
	for _, employeeID := range missing {
		_, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: failed to mark employee absent", "employee_id", employeeID, "error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: marked absent employees", "date", yesterday.Format("2006-01-02"), "count", marked)
	return nil
}
