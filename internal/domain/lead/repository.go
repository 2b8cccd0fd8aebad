package lead

import (
	"context"
)

type LeadRepository interface {
	Create(ctx context.Context, l Lead) (Lead, error)
	GetByID(ctx context.Context, id string) (Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]Lead, int64, error)
	ListAll(ctx context.Context) ([]Lead, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Lead, error)
}
