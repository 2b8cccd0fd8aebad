package lead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsStale(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status Status
		age    time.Duration
		want   bool
	}{
		{"new lead over 24h", StatusNew, 25 * time.Hour, true},
		{"new lead exactly 24h", StatusNew, 24 * time.Hour, true},
		{"new lead under 24h", StatusNew, 23 * time.Hour, false},
		{"23h59m truncates below threshold", StatusNew, 23*time.Hour + 59*time.Minute, false},
		{"contacted lead never stale", StatusContacted, 100 * time.Hour, false},
		{"converted lead never stale", StatusConverted, 100 * time.Hour, false},
		{"archived lead never stale", StatusArchived, 100 * time.Hour, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := Lead{Status: tc.status, CreatedAt: now.Add(-tc.age)}
			assert.Equal(t, tc.want, IsStale(l, now))
		})
	}
}
