package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/leave"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db database.Querier
}

func NewLeaveRequestRepository(db database.Querier) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.days, l.reason,
	l.status, l.decided_by, l.decided_at, l.rejection_reason, l.created_at, l.updated_at,
	e.full_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate, &lr.Days, &lr.Reason,
		&lr.Status, &lr.DecidedBy, &lr.DecidedAt, &lr.RejectionReason, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, days, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM inserted l
		JOIN employees e ON e.id = l.employee_id
	`

	created, err := scanLeaveRequest(r.db.QueryRow(ctx, query,
		uuid.NewString(), request.EmployeeID, request.LeaveType, request.StartDate,
		request.EndDate, request.Days, request.Reason, request.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	lr, err := scanLeaveRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == leave.ErrLeaveRequestNotFound {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND l.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM leave_requests l"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id` + where +
		fmt.Sprintf(" ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, lr)
	}

	return requests, total, rows.Err()
}

func (r *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		ORDER BY l.created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatus) (leave.LeaveRequest, error) {
	query := `
		WITH updated AS (
			UPDATE leave_requests
			SET status = $2, decided_by = $3, decided_at = NOW(),
				rejection_reason = $4, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM updated l
		JOIN employees e ON e.id = l.employee_id
	`

	lr, err := scanLeaveRequest(r.db.QueryRow(ctx, query, req.ID, req.Status, req.DecidedBy, req.RejectionReason))
	if err != nil {
		if err == leave.ErrLeaveRequestNotFound {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return lr, nil
}
