package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	status  string
	dept    string
	salary  *float64
	created *time.Time
	ended   *time.Time
}

func (r rec) createdAt() (time.Time, bool) {
	if r.created == nil {
		return time.Time{}, false
	}
	return *r.created, true
}

func ptrF(v float64) *float64 { return &v }

func ptrT(v time.Time) *time.Time { return &v }

func TestCountByStatus(t *testing.T) {
	t.Parallel()

	records := []rec{{status: "HIRED"}, {status: "PENDING"}, {status: "HIRED"}, {status: "hired"}}
	counts := CountByStatus(records, func(r rec) string { return r.status })

	assert.Equal(t, 2, counts["HIRED"])
	assert.Equal(t, 1, counts["PENDING"])
	// case-sensitive: lowercase is a different (non-canonical) value
	assert.Equal(t, 1, counts["hired"])
	assert.Equal(t, 0, counts["REJECTED"])

	assert.Empty(t, CountByStatus(nil, func(r rec) string { return r.status }))
}

func TestRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		part, total int
		want        float64
	}{
		{"empty population", 0, 0, 0.0},
		{"half", 1, 2, 50.0},
		{"third rounds to one decimal", 1, 3, 33.3},
		{"two thirds", 2, 3, 66.7},
		{"all", 4, 4, 100.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Rate(tc.part, tc.total), 1e-9)
		})
	}
}

func TestFunnel_SnapshotSemantics(t *testing.T) {
	t.Parallel()

	stages := []FunnelStage{
		{Name: "Applied"},
		{Name: "Screening", Statuses: []string{"PENDING", "REVIEWING", "SHORTLISTED"}},
		{Name: "Interview", Statuses: []string{"INTERVIEW"}},
		{Name: "Hired", Statuses: []string{"HIRED"}},
	}

	records := []rec{
		{status: "PENDING"},
		{status: "REVIEWING"},
		{status: "INTERVIEW"},
		{status: "HIRED"},
		{status: "REJECTED"},
	}

	got := Funnel(records, func(r rec) string { return r.status }, stages)
	require.Len(t, got, 4)
	assert.Equal(t, StageCount{Name: "Applied", Count: 5}, got[0])
	assert.Equal(t, StageCount{Name: "Screening", Count: 2}, got[1])
	// snapshot, not cohort: the HIRED record passed through INTERVIEW but
	// is not counted there
	assert.Equal(t, StageCount{Name: "Interview", Count: 1}, got[2])
	assert.Equal(t, StageCount{Name: "Hired", Count: 1}, got[3])
}

func TestFunnel_Empty(t *testing.T) {
	t.Parallel()

	got := Funnel(nil, func(r rec) string { return r.status }, []FunnelStage{{Name: "Applied"}})
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Count)
}

func TestMonthlyTrend_ZeroFilledChronological(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	records := []rec{
		{status: "HIRED", created: ptrT(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))},
		{status: "PENDING", created: ptrT(time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC))},
		{status: "PENDING", created: ptrT(time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))},
		{status: "PENDING", created: nil}, // missing createdAt: excluded
		{status: "PENDING", created: ptrT(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC))}, // outside window
	}

	got := MonthlyTrend(records, now, 6,
		func(r rec) (time.Time, bool) { return r.createdAt() },
		func(r rec) bool { return r.status == "HIRED" },
	)

	require.Len(t, got, 6)
	labels := make([]string, 6)
	for i, b := range got {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, labels)

	assert.Equal(t, 0, got[0].Count)
	assert.Equal(t, 0, got[1].Count)
	assert.Equal(t, 1, got[2].Count) // March
	assert.Equal(t, 0, got[3].Count)
	assert.Equal(t, 0, got[4].Count)
	assert.Equal(t, 2, got[5].Count) // June
	assert.Equal(t, 1, got[5].SubCount)
}

func TestMonthlyTrend_Empty(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	got := MonthlyTrend(nil, now, 6, func(r rec) (time.Time, bool) { return r.createdAt() }, nil)
	require.Len(t, got, 6)
	for _, b := range got {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.SubCount)
	}
}

func TestAverageElapsedDays(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)
	records := []rec{
		{created: ptrT(start), ended: ptrT(start.AddDate(0, 0, 10))},
		{created: ptrT(start), ended: ptrT(start.AddDate(0, 0, 20))},
		{created: ptrT(start)}, // no end: excluded
	}

	span := func(r rec) (time.Time, time.Time, bool) {
		if r.created == nil || r.ended == nil {
			return time.Time{}, time.Time{}, false
		}
		return *r.created, *r.ended, true
	}

	assert.InDelta(t, 15.0, AverageElapsedDays(records, span, 18), 1e-9)
}

func TestAverageElapsedDays_FallbackOnEmpty(t *testing.T) {
	t.Parallel()

	span := func(r rec) (time.Time, time.Time, bool) { return time.Time{}, time.Time{}, false }

	got := AverageElapsedDays([]rec{{status: "PENDING"}}, span, 18)
	assert.Equal(t, 18.0, got, "empty qualifying subset returns the fallback, not 0 and not NaN")

	assert.Equal(t, 18.0, AverageElapsedDays(nil, span, 18))
}

func TestGroupSum_UnassignedBucket(t *testing.T) {
	t.Parallel()

	records := []rec{
		{dept: "", salary: ptrF(1000)},
		{dept: "Eng", salary: ptrF(2000)},
		{dept: "Eng", salary: nil}, // counted, excluded from sum
	}

	got := GroupSum(records,
		func(r rec) string { return r.dept },
		func(r rec) (float64, bool) {
			if r.salary == nil {
				return 0, false
			}
			return *r.salary, true
		},
	)

	require.Len(t, got, 2)
	assert.Equal(t, GroupTotal{Key: "Eng", Count: 2, Sum: 2000}, got[0])
	assert.Equal(t, GroupTotal{Key: "Unassigned", Count: 1, Sum: 1000}, got[1])
}

func TestGroupSum_Empty(t *testing.T) {
	t.Parallel()

	got := GroupSum(nil, func(r rec) string { return r.dept }, func(r rec) (float64, bool) { return 0, false })
	assert.Empty(t, got)
}

func TestGrowthSeries_Cumulative(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	records := []rec{
		{created: ptrT(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))},  // before window
		{created: ptrT(time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC))},
		{created: ptrT(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))},
		{created: nil},
	}

	got := GrowthSeries(records, now, 4, func(r rec) (time.Time, bool) { return r.createdAt() })
	require.Len(t, got, 4)

	// running total at each month end, not per-month counts
	assert.Equal(t, "Jan", got[0].Label)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, 2, got[2].Count)
	assert.Equal(t, 3, got[3].Count)
}

func TestAggregatesDoNotMutateInput(t *testing.T) {
	t.Parallel()

	now := time.Now()
	records := []rec{
		{status: "HIRED", dept: "Eng", salary: ptrF(10), created: ptrT(now)},
		{status: "PENDING", dept: "", salary: nil, created: nil},
	}
	snapshot := make([]rec, len(records))
	copy(snapshot, records)

	CountByStatus(records, func(r rec) string { return r.status })
	MonthlyTrend(records, now, 3, func(r rec) (time.Time, bool) { return r.createdAt() }, nil)
	GroupSum(records, func(r rec) string { return r.dept }, func(r rec) (float64, bool) { return 0, false })
	GrowthSeries(records, now, 3, func(r rec) (time.Time, bool) { return r.createdAt() })

	assert.Equal(t, snapshot, records)
}
