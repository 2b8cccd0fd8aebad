package attendance

import (
	"fmt"
	"time"
)

// lateCutoff is the local time-of-day after which a check-in counts as late.
var lateCutoff = struct{ hour, min, sec int }{9, 30, 0}

// SetLateCutoff overrides the late check-in cutoff with an HH:MM:SS value.
// Called once at startup from configuration, before any request is served.
func SetLateCutoff(value string) error {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return fmt.Errorf("failed to parse late cutoff %q: %w", value, err)
	}
	lateCutoff.hour, lateCutoff.min, lateCutoff.sec = t.Clock()
	return nil
}

// IsLateCheckIn reports whether a check-in timestamp is late: its local
// time-of-day is strictly after 09:30:00. Evaluated independently of the
// stored status; the two may disagree and the stored status wins for
// display. This signal feeds aggregate counts only.
func IsLateCheckIn(checkIn time.Time) bool {
	h, m, s := checkIn.Clock()
	if h != lateCutoff.hour {
		return h > lateCutoff.hour
	}
	if m != lateCutoff.min {
		return m > lateCutoff.min
	}
	return s > lateCutoff.sec
}

// DeriveCheckInStatus maps a check-in time to the status stored at creation.
// HR may correct it afterwards.
func DeriveCheckInStatus(checkIn time.Time) Status {
	if IsLateCheckIn(checkIn) {
		return StatusLate
	}
	return StatusPresent
}
