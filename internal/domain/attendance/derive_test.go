package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(h, m, s int) time.Time {
	return time.Date(2026, time.September, 1, h, m, s, 0, time.Local)
}

func TestIsLateCheckIn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		checkIn time.Time
		want    bool
	}{
		{"early morning", clock(8, 0, 0), false},
		{"on the cutoff", clock(9, 30, 0), false},
		{"one second past", clock(9, 30, 1), true},
		{"one minute past", clock(9, 31, 0), true},
		{"just before", clock(9, 29, 59), false},
		{"afternoon", clock(13, 0, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsLateCheckIn(tc.checkIn))
		})
	}
}

func TestDeriveCheckInStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusPresent, DeriveCheckInStatus(clock(9, 0, 0)))
	assert.Equal(t, StatusLate, DeriveCheckInStatus(clock(10, 0, 0)))
}
