package dashboard

import (
	"github.com/opsgrid/workforce-backend-go/internal/pkg/analytics"
)

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the owner/HR dashboard
// endpoint. Everything here is recomputed from the current record
// populations on every call; nothing is cached.
type DashboardResponse struct {
	Recruitment RecruitmentSummary `json:"recruitment"`
	Workforce   WorkforceSummary   `json:"workforce"`
	Leave       LeaveSummary       `json:"leave"`
	Attendance  AttendanceSummary  `json:"attendance"`
	Payroll     PayrollSummary     `json:"payroll"`
	Leads       LeadSummary        `json:"leads"`
}

// ========== RECRUITMENT ==========

type RecruitmentSummary struct {
	Total          int                     `json:"total"`
	ByStatus       map[string]int          `json:"by_status"`
	ConversionRate float64                 `json:"conversion_rate"` // hired/total*100, one decimal
	Funnel         []analytics.StageCount  `json:"funnel"`
	MonthlyTrend   []analytics.TrendBucket `json:"monthly_trend"` // 6 months; sub_count = hired
	AvgTimeToHire  float64                 `json:"avg_time_to_hire_days"`
}

// ========== WORKFORCE ==========

type WorkforceSummary struct {
	Headcount           int                     `json:"headcount"`
	Growth              []analytics.GrowthPoint `json:"growth"` // 12-month cumulative headcount
	DepartmentBreakdown []analytics.GroupTotal  `json:"department_breakdown"`
}

// ========== LEAVE ==========

type LeaveSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	Pending  int            `json:"pending"`
}

// ========== ATTENDANCE ==========

type AttendanceSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	// LateCheckIns is derived from check-in timestamps against the 09:30
	// cutoff, independently of the stored status.
	LateCheckIns int `json:"late_check_ins"`
}

// ========== PAYROLL ==========

type PayrollSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	Pending  int            `json:"pending"`
}

// ========== LEADS ==========

type LeadSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	// Stale counts NEW leads older than 24h, derived at call time.
	Stale          int     `json:"stale"`
	ConversionRate float64 `json:"conversion_rate"` // converted/total*100
}
