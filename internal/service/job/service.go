package job

import (
	"context"
	"fmt"

	"github.com/opsgrid/workforce-backend-go/internal/domain/job"
)

type JobService interface {
	Create(ctx context.Context, req job.CreateJobRequest) (job.Job, error)
	Get(ctx context.Context, id string) (job.Job, error)
	List(ctx context.Context, filter job.JobFilter) ([]job.Job, int64, error)
	SetOpen(ctx context.Context, id string, open bool) (job.Job, error)
}

type jobService struct {
	jobs job.JobRepository
}

func NewJobService(jobs job.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) Create(ctx context.Context, req job.CreateJobRequest) (job.Job, error) {
	posting := job.Job{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		IsOpen:         true,
	}

	created, err := s.jobs.Create(ctx, posting)
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return created, nil
}

func (s *jobService) Get(ctx context.Context, id string) (job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *jobService) List(ctx context.Context, filter job.JobFilter) ([]job.Job, int64, error) {
	return s.jobs.List(ctx, filter)
}

func (s *jobService) SetOpen(ctx context.Context, id string, open bool) (job.Job, error) {
	if err := s.jobs.SetOpen(ctx, id, open); err != nil {
		return job.Job{}, err
	}
	return s.jobs.GetByID(ctx, id)
}
