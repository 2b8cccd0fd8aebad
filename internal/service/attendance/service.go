package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	"github.com/opsgrid/workforce-backend-go/internal/domain/employee"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/domain/workflow"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, actor user.Actor) (attendance.Attendance, error)
	CheckOut(ctx context.Context, actor user.Actor) (attendance.Attendance, error)
	Correct(ctx context.Context, actor user.Actor, req attendance.CorrectAttendanceRequest) (attendance.Attendance, error)
	Get(ctx context.Context, id string) (attendance.Attendance, error)
	List(ctx context.Context, actor user.Actor, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error)
}

type attendanceService struct {
	records   attendance.AttendanceRepository
	employees employee.EmployeeRepository
	now       func() time.Time
}

func NewAttendanceService(records attendance.AttendanceRepository, employees employee.EmployeeRepository) AttendanceService {
	return &attendanceService{
		records:   records,
		employees: employees,
		now:       time.Now,
	}
}

// CheckIn creates today's record for the actor. The stored status is derived
// from the check-in time against the 09:30 cutoff; HR can correct it later.
func (s *attendanceService) CheckIn(ctx context.Context, actor user.Actor) (attendance.Attendance, error) {
	emp, err := s.employees.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to resolve employee for user: %w", err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	existing, err := s.records.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}

	record := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       today,
		CheckIn:    &now,
		Status:     attendance.DeriveCheckInStatus(now),
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check in: %w", err)
	}

	return created, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, actor user.Actor) (attendance.Attendance, error) {
	emp, err := s.employees.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to resolve employee for user: %w", err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	record, err := s.records.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if record == nil {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}

	updated, err := s.records.SetCheckOut(ctx, record.ID, now)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check out: %w", err)
	}

	return updated, nil
}

// Correct applies an HR status correction. Any status can move to any other,
// but every correction needs a non-empty audit note; the note check runs
// before the same-status shortcut, so even a no-op correction without a note
// is rejected.
func (s *attendanceService) Correct(ctx context.Context, actor user.Actor, req attendance.CorrectAttendanceRequest) (attendance.Attendance, error) {
	record, err := s.records.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	next, err := workflow.Transition(workflow.Request{
		Entity:    workflow.EntityAttendance,
		Current:   string(record.Status),
		Target:    req.Status,
		Role:      actor.Role,
		AuditNote: req.AuditNote,
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	if next == string(record.Status) {
		return record, nil
	}

	entry := attendance.AuditEntry{
		Author:     actor.UserID,
		FromStatus: record.Status,
		ToStatus:   attendance.Status(next),
		Note:       req.AuditNote,
		CreatedAt:  s.now().UTC(),
	}

	corrected, err := s.records.Correct(ctx, record.ID, attendance.Status(next), entry)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to correct attendance: %w", err)
	}

	return corrected, nil
}

func (s *attendanceService) Get(ctx context.Context, id string) (attendance.Attendance, error) {
	return s.records.GetByID(ctx, id)
}

// List scopes employees down to their own records.
func (s *attendanceService) List(ctx context.Context, actor user.Actor, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	if actor.Role == user.RoleEmployee {
		emp, err := s.employees.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to resolve employee for user: %w", err)
		}
		filter.EmployeeID = &emp.ID
	}

	return s.records.List(ctx, filter)
}
