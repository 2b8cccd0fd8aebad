package resource

import (
	"time"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// Resource is a content item on the marketing site (guide, article,
// announcement). Rich-text editing happens elsewhere; the backend stores the
// body opaquely.
type Resource struct {
	ID          string
	Title       string
	Slug        string
	Body        string
	Category    *string
	Status      Status
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
