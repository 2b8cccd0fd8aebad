// Package analytics reduces record populations into the summary structures
// the dashboards render. Every function is pure and total: empty input
// yields zeroed structures, never an error, and the input slice is never
// mutated. Records missing a field an aggregate depends on are excluded
// from that aggregate rather than aborting it.
//
// Aggregates are recomputed over the full population on every refresh;
// populations fit in memory and nothing here maintains incremental state.
package analytics

import (
	"math"
	"sort"
	"time"
)

// CountByStatus returns a census of exact status strings. Matching is
// case-sensitive to stay aligned with the stored canonical values.
func CountByStatus[T any](records []T, status func(T) string) map[string]int {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[status(r)]++
	}
	return counts
}

// Rate returns part/total*100 rounded to one decimal place. A zero total
// yields 0.0, never NaN or Inf.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// FunnelStage is one stage of an ordered funnel. A nil Statuses set counts
// every record (the "Applied" stage); otherwise a record counts when its
// current status is in the set.
type FunnelStage struct {
	Name     string
	Statuses []string
}

// StageCount is one computed funnel stage.
type StageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Funnel computes stage counts from current status membership. This is a
// snapshot of the current distribution, not a historical cohort funnel:
// records that already moved past a stage are not counted in it.
func Funnel[T any](records []T, status func(T) string, stages []FunnelStage) []StageCount {
	out := make([]StageCount, len(stages))
	for i, stage := range stages {
		out[i].Name = stage.Name
		if stage.Statuses == nil {
			out[i].Count = len(records)
			continue
		}
		for _, r := range records {
			s := status(r)
			for _, want := range stage.Statuses {
				if s == want {
					out[i].Count++
					break
				}
			}
		}
	}
	return out
}

// TrendBucket is one calendar month of a trailing window.
type TrendBucket struct {
	Label    string `json:"label"` // short month name, e.g. "Sep"
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Count    int    `json:"count"`
	SubCount int    `json:"sub_count"`
}

// MonthlyTrend buckets records by the calendar month of their creation over
// a trailing window of `months` months ending at now. All buckets are
// emitted, zero-filled, oldest first. SubCount counts records additionally
// matching sub. Records whose createdAt accessor reports no value are
// excluded.
func MonthlyTrend[T any](records []T, now time.Time, months int, createdAt func(T) (time.Time, bool), sub func(T) bool) []TrendBucket {
	if months <= 0 {
		return []TrendBucket{}
	}

	buckets := make([]TrendBucket, months)
	index := make(map[[2]int]*TrendBucket, months)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		buckets[i] = TrendBucket{
			Label: m.Format("Jan"),
			Year:  m.Year(),
			Month: int(m.Month()),
		}
		index[[2]int{m.Year(), int(m.Month())}] = &buckets[i]
	}

	for _, r := range records {
		created, ok := createdAt(r)
		if !ok {
			continue
		}
		b, ok := index[[2]int{created.Year(), int(created.Month())}]
		if !ok {
			continue // outside the window
		}
		b.Count++
		if sub != nil && sub(r) {
			b.SubCount++
		}
	}

	return buckets
}

// AverageElapsedDays computes the mean whole-day difference between the two
// timestamps span reports, over records where span reports values. When no
// record qualifies the caller-supplied fallback is returned; dashboards
// show a plausible placeholder rather than "0 days" before any data exists.
func AverageElapsedDays[T any](records []T, span func(T) (start, end time.Time, ok bool), fallback float64) float64 {
	var totalDays, n int
	for _, r := range records {
		start, end, ok := span(r)
		if !ok {
			continue
		}
		totalDays += int(end.Sub(start).Hours() / 24)
		n++
	}
	if n == 0 {
		return fallback
	}
	return float64(totalDays) / float64(n)
}

// UnassignedKey is the bucket for records with an empty grouping key.
const UnassignedKey = "Unassigned"

// GroupTotal is one {key, count, sum} tuple of a breakdown.
type GroupTotal struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// GroupSum groups a numeric field by a string key. Records with an empty
// key land in the "Unassigned" bucket instead of being dropped; records
// whose value accessor reports no value still count toward Count but add
// nothing to Sum. Output is sorted by key, Unassigned last.
func GroupSum[T any](records []T, key func(T) string, value func(T) (float64, bool)) []GroupTotal {
	byKey := make(map[string]*GroupTotal)
	for _, r := range records {
		k := key(r)
		if k == "" {
			k = UnassignedKey
		}
		g, ok := byKey[k]
		if !ok {
			g = &GroupTotal{Key: k}
			byKey[k] = g
		}
		g.Count++
		if v, ok := value(r); ok {
			g.Sum += v
		}
	}

	out := make([]GroupTotal, 0, len(byKey))
	for _, g := range byKey {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].Key == UnassignedKey) != (out[j].Key == UnassignedKey) {
			return out[j].Key == UnassignedKey
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// GrowthPoint is the cumulative count at one month boundary.
type GrowthPoint struct {
	Label string `json:"label"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Count int    `json:"count"`
}

// GrowthSeries computes a running total over a trailing window: for each of
// the last `months` month-ends, the count of records whose joinedAt is at
// or before that boundary. This is headcount-at-a-point-in-time, not
// created-within-month; see MonthlyTrend for the latter.
func GrowthSeries[T any](records []T, now time.Time, months int, joinedAt func(T) (time.Time, bool)) []GrowthPoint {
	if months <= 0 {
		return []GrowthPoint{}
	}

	out := make([]GrowthPoint, months)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		boundary := m.AddDate(0, 1, 0) // first instant of the next month
		out[i] = GrowthPoint{
			Label: m.Format("Jan"),
			Year:  m.Year(),
			Month: int(m.Month()),
		}
		for _, r := range records {
			joined, ok := joinedAt(r)
			if !ok {
				continue
			}
			if joined.Before(boundary) {
				out[i].Count++
			}
		}
	}
	return out
}
