package resource

import (
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/pkg/validator"
)

type CreateResourceRequest struct {
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Body     string  `json:"body"`
	Category *string `json:"category,omitempty"`
}

func (r *CreateResourceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if !validator.IsValidSlug(r.Slug) {
		errs = append(errs, validator.ValidationError{
			Field:   "slug",
			Message: "slug must be lowercase letters, digits and hyphens",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PublishResourceRequest struct {
	ID string `json:"-"`
	// PublishAt schedules the resource when set in the future; empty means
	// publish immediately.
	PublishAt *time.Time `json:"publish_at,omitempty"`
}

// ResourceItem is a list-view resource with the derived scheduling flag.
type ResourceItem struct {
	Resource
	IsScheduled bool `json:"is_scheduled"`
}

type ResourceFilter struct {
	Status   *Status
	Category *string
	Page     int
	Limit    int
}
