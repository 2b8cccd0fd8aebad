package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/job"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
)

type jobRepository struct {
	db database.Querier
}

func NewJobRepository(db database.Querier) job.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `
	id, title, department, location, employment_type, description, is_open, created_at, updated_at
`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Department, &j.Location, &j.EmploymentType,
		&j.Description, &j.IsOpen, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *jobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	query := `
		INSERT INTO jobs (id, title, department, location, employment_type, description, is_open)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + jobColumns

	created, err := scanJob(r.db.QueryRow(ctx, query,
		uuid.NewString(), j.Title, j.Department, j.Location, j.EmploymentType, j.Description, j.IsOpen,
	))
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if err == job.ErrJobNotFound {
			return job.Job{}, err
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

func (r *jobRepository) List(ctx context.Context, filter job.JobFilter) ([]job.Job, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.OpenOnly {
		where += " AND is_open = TRUE"
	}
	if filter.Department != nil {
		where += fmt.Sprintf(" AND department = $%d", argPos)
		args = append(args, *filter.Department)
		argPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := `SELECT ` + jobColumns + ` FROM jobs` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}

	return jobs, total, rows.Err()
}

func (r *jobRepository) SetOpen(ctx context.Context, id string, open bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE jobs SET is_open = $2, updated_at = NOW() WHERE id = $1`, id, open)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}
	return nil
}
