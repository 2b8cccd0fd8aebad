package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListAll(ctx context.Context) ([]Employee, error)
	ListActive(ctx context.Context, department *string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Resign(ctx context.Context, id string, resignedAt time.Time) error
}
