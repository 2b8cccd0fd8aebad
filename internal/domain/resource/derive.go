package resource

import (
	"time"
)

// IsScheduledNotYetLive reports whether the resource is PUBLISHED with a
// publish timestamp strictly in the future: scheduled, not yet visible in
// public listings. Recomputed against now on every read.
func IsScheduledNotYetLive(r Resource, now time.Time) bool {
	if r.Status != StatusPublished || r.PublishedAt == nil {
		return false
	}
	return r.PublishedAt.After(now)
}
