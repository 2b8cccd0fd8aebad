package resource

import (
	"context"
	"time"
)

type ResourceRepository interface {
	Create(ctx context.Context, r Resource) (Resource, error)
	GetByID(ctx context.Context, id string) (Resource, error)
	GetBySlug(ctx context.Context, slug string) (Resource, error)
	List(ctx context.Context, filter ResourceFilter) ([]Resource, int64, error)
	Publish(ctx context.Context, id string, publishedAt time.Time) (Resource, error)
	Archive(ctx context.Context, id string) (Resource, error)
}
