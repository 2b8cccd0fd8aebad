package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	"github.com/opsgrid/workforce-backend-go/internal/domain/employee"
	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
	"github.com/opsgrid/workforce-backend-go/internal/domain/leave"
	"github.com/opsgrid/workforce-backend-go/internal/domain/payroll"
)

type fakeAppRepo struct{ apps []application.Application }

func (f *fakeAppRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	return a, nil
}
func (f *fakeAppRepo) GetByID(_ context.Context, _ string) (application.Application, error) {
	return application.Application{}, application.ErrApplicationNotFound
}
func (f *fakeAppRepo) List(_ context.Context, _ application.ApplicationFilter) ([]application.Application, int64, error) {
	return f.apps, int64(len(f.apps)), nil
}
func (f *fakeAppRepo) ListAll(_ context.Context) ([]application.Application, error) {
	return f.apps, nil
}
func (f *fakeAppRepo) UpdateStatus(_ context.Context, _ string, _ application.Status) (application.Application, error) {
	return application.Application{}, nil
}
func (f *fakeAppRepo) AppendNote(_ context.Context, _ string, _ application.Note) (application.Application, error) {
	return application.Application{}, nil
}

type fakeEmployeeRepo struct{ emps []employee.Employee }

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.emps, int64(len(f.emps)), nil
}
func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	return f.emps, nil
}
func (f *fakeEmployeeRepo) ListActive(_ context.Context, _ *string) ([]employee.Employee, error) {
	return f.emps, nil
}
func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, nil
}
func (f *fakeEmployeeRepo) Resign(_ context.Context, _ string, _ time.Time) error { return nil }

type fakeLeaveRepo struct{ requests []leave.LeaveRequest }

func (f *fakeLeaveRepo) Create(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	return r, nil
}
func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}
func (f *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return f.requests, int64(len(f.requests)), nil
}
func (f *fakeLeaveRepo) ListAll(_ context.Context) ([]leave.LeaveRequest, error) {
	return f.requests, nil
}
func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, _ leave.UpdateLeaveStatus) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}

type fakeAttendanceRepo struct{ records []attendance.Attendance }

func (f *fakeAttendanceRepo) Create(_ context.Context, r attendance.Attendance) (attendance.Attendance, error) {
	return r, nil
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
	return f.records, int64(len(f.records)), nil
}
func (f *fakeAttendanceRepo) ListAll(_ context.Context, _, _ time.Time) ([]attendance.Attendance, error) {
	return f.records, nil
}
func (f *fakeAttendanceRepo) ListEmployeesWithoutRecord(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}

type fakePayrollRepo struct{ runs []payroll.PayrollRun }

func (f *fakePayrollRepo) CreateForPeriod(_ context.Context, r payroll.PayrollRun) (payroll.PayrollRun, error) {
	return r, nil
}
func (f *fakePayrollRepo) GetByID(_ context.Context, _ string) (payroll.PayrollRun, error) {
	return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
}
func (f *fakePayrollRepo) List(_ context.Context, _ payroll.PayrollRunFilter) ([]payroll.PayrollRun, int64, error) {
	return f.runs, int64(len(f.runs)), nil
}
func (f *fakePayrollRepo) ListAll(_ context.Context) ([]payroll.PayrollRun, error) {
	return f.runs, nil
}
func (f *fakePayrollRepo) ExistsForPeriod(_ context.Context, _, _ int, _ *string) (bool, error) {
	return false, nil
}
func (f *fakePayrollRepo) Approve(_ context.Context, _ string, _ string) (payroll.PayrollRun, error) {
	return payroll.PayrollRun{}, nil
}

type fakeLeadRepo struct{ leads []lead.Lead }

func (f *fakeLeadRepo) Create(_ context.Context, l lead.Lead) (lead.Lead, error) { return l, nil }
func (f *fakeLeadRepo) GetByID(_ context.Context, _ string) (lead.Lead, error) {
	return lead.Lead{}, lead.ErrLeadNotFound
}
func (f *fakeLeadRepo) List(_ context.Context, _ lead.LeadFilter) ([]lead.Lead, int64, error) {
	return f.leads, int64(len(f.leads)), nil
}
func (f *fakeLeadRepo) ListAll(_ context.Context) ([]lead.Lead, error) { return f.leads, nil }
func (f *fakeLeadRepo) UpdateStatus(_ context.Context, _ string, _ lead.Status) (lead.Lead, error) {
	return lead.Lead{}, nil
}

func newTestService(
	apps []application.Application,
	emps []employee.Employee,
	leaves []leave.LeaveRequest,
	records []attendance.Attendance,
	runs []payroll.PayrollRun,
	leads []lead.Lead,
	now time.Time,
) DashboardService {
	svc := NewDashboardService(
		&fakeAppRepo{apps: apps},
		&fakeEmployeeRepo{emps: emps},
		&fakeLeaveRepo{requests: leaves},
		&fakeAttendanceRepo{records: records},
		&fakePayrollRepo{runs: runs},
		&fakeLeadRepo{leads: leads},
	).(*dashboardService)
	svc.now = func() time.Time { return now }
	return svc
}

func dptr(s string) *string { return &s }

func TestSummary_EmptyPopulations(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(nil, nil, nil, nil, nil, nil, now)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.Recruitment.Total)
	assert.Equal(t, 0.0, summary.Recruitment.ConversionRate)
	assert.Equal(t, DefaultTimeToHireDays, summary.Recruitment.AvgTimeToHire,
		"empty hire population falls back to the default")
	assert.Len(t, summary.Recruitment.MonthlyTrend, 6, "trend buckets are zero-filled")
	assert.Zero(t, summary.Workforce.Headcount)
	assert.Len(t, summary.Workforce.Growth, 12)
}

func TestSummary_RecruitmentAggregates(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	hiredAt := now.AddDate(0, 0, -10)
	apps := []application.Application{
		{ID: "a1", Status: application.StatusPending, CreatedAt: now.AddDate(0, 0, -1), UpdatedAt: now},
		{ID: "a2", Status: application.StatusReviewing, CreatedAt: now.AddDate(0, -1, 0), UpdatedAt: now},
		{ID: "a3", Status: application.StatusHired, CreatedAt: hiredAt.AddDate(0, 0, -20), UpdatedAt: hiredAt},
		{ID: "a4", Status: application.StatusRejected, CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now},
	}

	svc := newTestService(apps, nil, nil, nil, nil, nil, now)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	rec := summary.Recruitment
	assert.Equal(t, 4, rec.Total)
	assert.Equal(t, 25.0, rec.ConversionRate, "1 hired of 4 is 25.0")
	assert.Equal(t, 1, rec.ByStatus[string(application.StatusHired)])
	assert.Equal(t, 20.0, rec.AvgTimeToHire, "single hire took 20 whole days")

	require.Len(t, rec.Funnel, 4)
	assert.Equal(t, "Applied", rec.Funnel[0].Name)
	assert.Equal(t, 4, rec.Funnel[0].Count, "Applied counts everything")
	assert.Equal(t, 1, rec.Funnel[3].Count, "Hired stage counts hires")
}

func TestSummary_WorkforceBreakdownAndGrowth(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	salary := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	emps := []employee.Employee{
		{ID: "e1", Department: dptr("Engineering"), BaseSalary: salary(1000), JoiningDate: now.AddDate(0, -10, 0), Status: employee.EmploymentStatusActive},
		{ID: "e2", Department: dptr("Engineering"), BaseSalary: salary(1200), JoiningDate: now.AddDate(0, -4, 0), Status: employee.EmploymentStatusActive},
		{ID: "e3", Department: nil, BaseSalary: nil, JoiningDate: now.AddDate(0, -1, 0), Status: employee.EmploymentStatusActive},
		{ID: "e4", Department: dptr("Sales"), BaseSalary: salary(900), JoiningDate: now.AddDate(-2, 0, 0), Status: employee.EmploymentStatusResigned},
	}

	svc := newTestService(nil, emps, nil, nil, nil, nil, now)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	wf := summary.Workforce
	assert.Equal(t, 3, wf.Headcount, "resigned employees do not count")

	require.Len(t, wf.DepartmentBreakdown, 2)
	assert.Equal(t, "Engineering", wf.DepartmentBreakdown[0].Key)
	assert.Equal(t, 2, wf.DepartmentBreakdown[0].Count)
	assert.Equal(t, 2200.0, wf.DepartmentBreakdown[0].Sum)
	assert.Equal(t, "Unassigned", wf.DepartmentBreakdown[1].Key, "unassigned bucket sorts last")
	assert.Equal(t, 1, wf.DepartmentBreakdown[1].Count)
	assert.Equal(t, 0.0, wf.DepartmentBreakdown[1].Sum, "missing salary counts but sums nothing")

	require.Len(t, wf.Growth, 12)
	last := wf.Growth[len(wf.Growth)-1]
	assert.Equal(t, 3, last.Count, "latest point carries the full active headcount")
}

func TestSummary_LeadStaleAndLateCheckIns(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	leads := []lead.Lead{
		{ID: "l1", Status: lead.StatusNew, CreatedAt: now.Add(-30 * time.Hour)},
		{ID: "l2", Status: lead.StatusNew, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "l3", Status: lead.StatusConverted, CreatedAt: now.Add(-100 * time.Hour)},
	}

	onTime := time.Date(2025, 6, 13, 9, 15, 0, 0, time.UTC)
	lateIn := time.Date(2025, 6, 14, 9, 45, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{ID: "r1", Status: attendance.StatusPresent, CheckIn: &onTime},
		{ID: "r2", Status: attendance.StatusPresent, CheckIn: &lateIn},
		{ID: "r3", Status: attendance.StatusAbsent},
	}

	svc := newTestService(nil, nil, nil, records, nil, leads, now)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Leads.Stale, "only aged NEW leads are stale")
	assert.InDelta(t, 33.3, summary.Leads.ConversionRate, 0.01)
	assert.Equal(t, 1, summary.Attendance.LateCheckIns,
		"late derives from check-in time independent of status")
}
