package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
)

type applicationRepository struct {
	db database.Querier
}

func NewApplicationRepository(db database.Querier) application.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `
	a.id, a.job_id, a.applicant_name, a.email, a.phone, a.resume_url,
	a.status, a.notes, a.created_at, a.updated_at, j.title, j.department
`

func scanApplication(row pgx.Row) (application.Application, error) {
	var app application.Application
	var notes []byte

	err := row.Scan(
		&app.ID, &app.JobID, &app.ApplicantName, &app.Email, &app.Phone, &app.ResumeURL,
		&app.Status, &notes, &app.CreatedAt, &app.UpdatedAt, &app.JobTitle, &app.JobDepartment,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, err
	}

	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &app.Notes); err != nil {
			return application.Application{}, fmt.Errorf("failed to decode application notes: %w", err)
		}
	}

	return app, nil
}

func (r *applicationRepository) Create(ctx context.Context, app application.Application) (application.Application, error) {
	notes, err := json.Marshal(app.Notes)
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to encode application notes: %w", err)
	}

	query := `
		WITH inserted AS (
			INSERT INTO applications (id, job_id, applicant_name, email, phone, resume_url, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + applicationColumns + `
		FROM inserted a
		JOIN jobs j ON j.id = a.job_id
	`

	created, err := scanApplication(r.db.QueryRow(ctx, query,
		uuid.NewString(), app.JobID, app.ApplicantName, app.Email, app.Phone, app.ResumeURL,
		app.Status, notes,
	))
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to create application: %w", err)
	}

	return created, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.id = $1
	`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == application.ErrApplicationNotFound {
			return application.Application{}, err
		}
		return application.Application{}, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

func (r *applicationRepository) List(ctx context.Context, filter application.ApplicationFilter) ([]application.Application, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.JobID != nil {
		where += fmt.Sprintf(" AND a.job_id = $%d", argPos)
		args = append(args, *filter.JobID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM applications a" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
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
		SELECT ` + applicationColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id` + where +
		fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}

	return apps, total, rows.Err()
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		ORDER BY a.created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status application.Status) (application.Application, error) {
	query := `
		WITH updated AS (
			UPDATE applications
			SET status = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + applicationColumns + `
		FROM updated a
		JOIN jobs j ON j.id = a.job_id
	`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == application.ErrApplicationNotFound {
			return application.Application{}, err
		}
		return application.Application{}, fmt.Errorf("failed to update application status: %w", err)
	}

	return app, nil
}

func (r *applicationRepository) AppendNote(ctx context.Context, id string, note application.Note) (application.Application, error) {
	encoded, err := json.Marshal(note)
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to encode note: %w", err)
	}

	query := `
		WITH updated AS (
			UPDATE applications
			SET notes = COALESCE(notes, '[]'::jsonb) || $2::jsonb
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + applicationColumns + `
		FROM updated a
		JOIN jobs j ON j.id = a.job_id
	`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id, encoded))
	if err != nil {
		if err == application.ErrApplicationNotFound {
			return application.Application{}, err
		}
		return application.Application{}, fmt.Errorf("failed to append note: %w", err)
	}

	return app, nil
}
