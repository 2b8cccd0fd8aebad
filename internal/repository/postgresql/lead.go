package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
)

type leadRepository struct {
	db database.Querier
}

func NewLeadRepository(db database.Querier) lead.LeadRepository {
	return &leadRepository{db: db}
}

const leadColumns = `id, name, email, phone, requirement, status, created_at, updated_at`

func scanLead(row pgx.Row) (lead.Lead, error) {
	var l lead.Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Requirement,
		&l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return lead.Lead{}, lead.ErrLeadNotFound
		}
		return lead.Lead{}, err
	}
	return l, nil
}

func (r *leadRepository) Create(ctx context.Context, l lead.Lead) (lead.Lead, error) {
	query := `
		INSERT INTO chatbot_leads (id, name, email, phone, requirement, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leadColumns

	created, err := scanLead(r.db.QueryRow(ctx, query,
		uuid.NewString(), l.Name, l.Email, l.Phone, l.Requirement, l.Status,
	))
	if err != nil {
		return lead.Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}

	return created, nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (lead.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM chatbot_leads WHERE id = $1`

	l, err := scanLead(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == lead.ErrLeadNotFound {
			return lead.Lead{}, err
		}
		return lead.Lead{}, fmt.Errorf("failed to get lead: %w", err)
	}
	return l, nil
}

func (r *leadRepository) List(ctx context.Context, filter lead.LeadFilter) ([]lead.Lead, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM chatbot_leads"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := `SELECT ` + leadColumns + ` FROM chatbot_leads` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []lead.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, l)
	}

	return leads, total, rows.Err()
}

func (r *leadRepository) ListAll(ctx context.Context) ([]lead.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM chatbot_leads ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []lead.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *leadRepository) UpdateStatus(ctx context.Context, id string, status lead.Status) (lead.Lead, error) {
	query := `
		UPDATE chatbot_leads
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	l, err := scanLead(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == lead.ErrLeadNotFound {
			return lead.Lead{}, err
		}
		return lead.Lead{}, fmt.Errorf("failed to update lead status: %w", err)
	}

	return l, nil
}
