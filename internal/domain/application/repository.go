package application

import (
	"context"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]Application, int64, error)

	// ListAll returns the full population without pagination, for dashboard
	// aggregation.
	ListAll(ctx context.Context) ([]Application, error)

	// UpdateStatus persists a validated transition and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status Status) (Application, error)

	// AppendNote appends to the note log without touching status.
	AppendNote(ctx context.Context, id string, note Note) (Application, error)
}
