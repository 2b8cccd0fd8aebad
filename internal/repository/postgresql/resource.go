package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/resource"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
)

type resourceRepository struct {
	db database.Querier
}

func NewResourceRepository(db database.Querier) resource.ResourceRepository {
	return &resourceRepository{db: db}
}

const resourceColumns = `id, title, slug, body, category, status, published_at, created_at, updated_at`

func scanResource(row pgx.Row) (resource.Resource, error) {
	var res resource.Resource
	err := row.Scan(
		&res.ID, &res.Title, &res.Slug, &res.Body, &res.Category,
		&res.Status, &res.PublishedAt, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return resource.Resource{}, resource.ErrResourceNotFound
		}
		return resource.Resource{}, err
	}
	return res, nil
}

func (r *resourceRepository) Create(ctx context.Context, res resource.Resource) (resource.Resource, error) {
	query := `
		INSERT INTO resources (id, title, slug, body, category, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + resourceColumns

	created, err := scanResource(r.db.QueryRow(ctx, query,
		uuid.NewString(), res.Title, res.Slug, res.Body, res.Category, res.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "resources_slug_key") {
			return resource.Resource{}, resource.ErrSlugExists
		}
		return resource.Resource{}, fmt.Errorf("failed to create resource: %w", err)
	}

	return created, nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	res, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == resource.ErrResourceNotFound {
			return resource.Resource{}, err
		}
		return resource.Resource{}, fmt.Errorf("failed to get resource: %w", err)
	}
	return res, nil
}

func (r *resourceRepository) GetBySlug(ctx context.Context, slug string) (resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE slug = $1`

	res, err := scanResource(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if err == resource.ErrResourceNotFound {
			return resource.Resource{}, err
		}
		return resource.Resource{}, fmt.Errorf("failed to get resource by slug: %w", err)
	}
	return res, nil
}

func (r *resourceRepository) List(ctx context.Context, filter resource.ResourceFilter) ([]resource.Resource, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Category != nil {
		where += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, *filter.Category)
		argPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM resources"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count resources: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := `SELECT ` + resourceColumns + ` FROM resources` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	var resources []resource.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, 0, err
		}
		resources = append(resources, res)
	}

	return resources, total, rows.Err()
}

func (r *resourceRepository) Publish(ctx context.Context, id string, publishedAt time.Time) (resource.Resource, error) {
	query := `
		UPDATE resources
		SET status = $2, published_at = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + resourceColumns

	res, err := scanResource(r.db.QueryRow(ctx, query, id, resource.StatusPublished, publishedAt))
	if err != nil {
		if err == resource.ErrResourceNotFound {
			return resource.Resource{}, err
		}
		return resource.Resource{}, fmt.Errorf("failed to publish resource: %w", err)
	}

	return res, nil
}

func (r *resourceRepository) Archive(ctx context.Context, id string) (resource.Resource, error) {
	query := `
		UPDATE resources
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + resourceColumns

	res, err := scanResource(r.db.QueryRow(ctx, query, id, resource.StatusArchived))
	if err != nil {
		if err == resource.ErrResourceNotFound {
			return resource.Resource{}, err
		}
		return resource.Resource{}, fmt.Errorf("failed to archive resource: %w", err)
	}

	return res, nil
}
