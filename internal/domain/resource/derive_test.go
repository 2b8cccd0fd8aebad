package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsScheduledNotYetLive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	cases := []struct {
		name string
		r    Resource
		want bool
	}{
		{"published in future is scheduled", Resource{Status: StatusPublished, PublishedAt: &future}, true},
		{"published in past is live", Resource{Status: StatusPublished, PublishedAt: &past}, false},
		{"published exactly now is live", Resource{Status: StatusPublished, PublishedAt: &now}, false},
		{"draft with future date is not scheduled", Resource{Status: StatusDraft, PublishedAt: &future}, false},
		{"published without timestamp is live", Resource{Status: StatusPublished}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsScheduledNotYetLive(tc.r, now))
		})
	}
}
