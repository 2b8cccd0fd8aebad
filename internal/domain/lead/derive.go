package lead

import (
	"time"
)

// StaleAfterHours is the elapsed time after which an uncontacted lead
// counts as stale.
const StaleAfterHours = 24

// IsStale reports whether the lead has sat in NEW for 24 hours or more.
// Whole-hour truncation on calendar elapsed time, not business hours. Never
// persisted; recomputed against now on every read.
func IsStale(l Lead, now time.Time) bool {
	if l.Status != StatusNew {
		return false
	}
	return int(now.Sub(l.CreatedAt).Hours()) >= StaleAfterHours
}
