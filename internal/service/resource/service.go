package resource

import (
	"context"
	"fmt"
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/domain/resource"
)

type ResourceService interface {
	Create(ctx context.Context, req resource.CreateResourceRequest) (resource.Resource, error)
	Get(ctx context.Context, id string) (resource.ResourceItem, error)
	GetBySlug(ctx context.Context, slug string) (resource.Resource, error)
	List(ctx context.Context, filter resource.ResourceFilter) ([]resource.ResourceItem, int64, error)
	Publish(ctx context.Context, req resource.PublishResourceRequest) (resource.Resource, error)
	Archive(ctx context.Context, id string) (resource.Resource, error)
}

type resourceService struct {
	resources resource.ResourceRepository
	now       func() time.Time
}

func NewResourceService(resources resource.ResourceRepository) ResourceService {
	return &resourceService{
		resources: resources,
		now:       time.Now,
	}
}

func (s *resourceService) Create(ctx context.Context, req resource.CreateResourceRequest) (resource.Resource, error) {
	res := resource.Resource{
		Title:    req.Title,
		Slug:     req.Slug,
		Body:     req.Body,
		Category: req.Category,
		Status:   resource.StatusDraft,
	}

	created, err := s.resources.Create(ctx, res)
	if err != nil {
		return resource.Resource{}, err
	}

	return created, nil
}

func (s *resourceService) Get(ctx context.Context, id string) (resource.ResourceItem, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return resource.ResourceItem{}, err
	}

	return resource.ResourceItem{
		Resource:    res,
		IsScheduled: resource.IsScheduledNotYetLive(res, s.now()),
	}, nil
}

// GetBySlug serves the public read path; scheduled resources stay hidden
// until their publish time passes.
func (s *resourceService) GetBySlug(ctx context.Context, slug string) (resource.Resource, error) {
	res, err := s.resources.GetBySlug(ctx, slug)
	if err != nil {
		return resource.Resource{}, err
	}

	if res.Status != resource.StatusPublished || resource.IsScheduledNotYetLive(res, s.now()) {
		return resource.Resource{}, resource.ErrResourceNotFound
	}

	return res, nil
}

func (s *resourceService) List(ctx context.Context, filter resource.ResourceFilter) ([]resource.ResourceItem, int64, error) {
	resources, total, err := s.resources.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	now := s.now()
	items := make([]resource.ResourceItem, 0, len(resources))
	for _, res := range resources {
		items = append(items, resource.ResourceItem{
			Resource:    res,
			IsScheduled: resource.IsScheduledNotYetLive(res, now),
		})
	}

	return items, total, nil
}

// Publish marks the resource PUBLISHED. A future PublishAt schedules it; the
// record is published with a future timestamp and the derived flag keeps it
// out of public listings until then.
func (s *resourceService) Publish(ctx context.Context, req resource.PublishResourceRequest) (resource.Resource, error) {
	publishedAt := s.now()
	if req.PublishAt != nil {
		publishedAt = *req.PublishAt
	}

	res, err := s.resources.Publish(ctx, req.ID, publishedAt)
	if err != nil {
		return resource.Resource{}, fmt.Errorf("failed to publish resource: %w", err)
	}

	return res, nil
}

func (s *resourceService) Archive(ctx context.Context, id string) (resource.Resource, error) {
	res, err := s.resources.Archive(ctx, id)
	if err != nil {
		return resource.Resource{}, fmt.Errorf("failed to archive resource: %w", err)
	}

	return res, nil
}
