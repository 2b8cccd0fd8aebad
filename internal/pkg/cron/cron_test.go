package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
)

type fakeLeadRepo struct {
	leads        []lead.Lead
	listAllCalls int
}

func (f *fakeLeadRepo) Create(_ context.Context, l lead.Lead) (lead.Lead, error) { return l, nil }
func (f *fakeLeadRepo) GetByID(_ context.Context, _ string) (lead.Lead, error) {
	return lead.Lead{}, lead.ErrLeadNotFound
}
func (f *fakeLeadRepo) List(_ context.Context, _ lead.LeadFilter) ([]lead.Lead, int64, error) {
	return f.leads, int64(len(f.leads)), nil
}
func (f *fakeLeadRepo) ListAll(_ context.Context) ([]lead.Lead, error) {
	f.listAllCalls++
	return f.leads, nil
}
func (f *fakeLeadRepo) UpdateStatus(_ context.Context, _ string, _ lead.Status) (lead.Lead, error) {
	return lead.Lead{}, nil
}

type fakeAttendanceRepo struct {
	missing    []string
	missingFor []time.Time
	created    []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	f.created = append(f.created, record)
	return record, nil
}
func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}
func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, _ string, _ time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}
func (f *fakeAttendanceRepo) Correct(_ context.Context, _ string, _ attendance.Status, _ attendance.AuditEntry) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}
func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttendanceRepo) ListAll(_ context.Context, _, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) ListEmployeesWithoutRecord(_ context.Context, date time.Time) ([]string, error) {
	f.missingFor = append(f.missingFor, date)
	return f.missing, nil
}

func TestMarkAbsentEmployees_BackfillsYesterday(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{missing: []string{"emp-1", "emp-2"}}
	jobs := NewAttendanceJobs(repo)

	// Runs regardless of the process clock's hour.
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	now := time.Now()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	require.Len(t, repo.missingFor, 1)
	assert.Equal(t, yesterday, repo.missingFor[0])

	require.Len(t, repo.created, 2)
	for i, record := range repo.created {
		assert.Equal(t, repo.missing[i], record.EmployeeID)
		assert.Equal(t, attendance.StatusAbsent, record.Status)
		assert.Equal(t, yesterday, record.Date)
	}
}

func TestMarkAbsentEmployees_NothingMissing(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{}
	jobs := NewAttendanceJobs(repo)

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, repo.created)
}

func TestSchedulerRunOnce(t *testing.T) {
	t.Parallel()

	leadRepo := &fakeLeadRepo{}
	attendanceRepo := &fakeAttendanceRepo{}

	scheduler := NewScheduler()
	NewLeadJobs(leadRepo).RegisterJobs(scheduler)
	NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)

	scheduler.RunOnce(context.Background())

	assert.Equal(t, 1, leadRepo.listAllCalls)
	assert.Len(t, attendanceRepo.missingFor, 1)
}
