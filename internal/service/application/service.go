package application

import (
	"context"
	"fmt"
	"time"

	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
	"github.com/opsgrid/workforce-backend-go/internal/domain/job"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/domain/workflow"
)

type ApplicationService interface {
	Submit(ctx context.Context, req application.SubmitApplicationRequest) (application.Application, error)
	Get(ctx context.Context, id string) (application.Application, error)
	List(ctx context.Context, filter application.ApplicationFilter) ([]application.Application, int64, error)
	UpdateStatus(ctx context.Context, actor user.Actor, req application.UpdateStatusRequest) (application.Application, error)
	AddNote(ctx context.Context, actor user.Actor, req application.AddNoteRequest) (application.Application, error)
}

type applicationService struct {
	applications application.ApplicationRepository
	jobs         job.JobRepository
}

func NewApplicationService(applications application.ApplicationRepository, jobs job.JobRepository) ApplicationService {
	return &applicationService{
		applications: applications,
		jobs:         jobs,
	}
}

// Submit creates a new application in PENDING from the public careers form.
func (s *applicationService) Submit(ctx context.Context, req application.SubmitApplicationRequest) (application.Application, error) {
	posting, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return application.Application{}, err
	}
	if !posting.IsOpen {
		return application.Application{}, job.ErrJobClosed
	}

	app := application.Application{
		JobID:         req.JobID,
		ApplicantName: req.ApplicantName,
		Email:         req.Email,
		Phone:         req.Phone,
		ResumeURL:     req.ResumeURL,
		Status:        application.StatusPending,
	}

	created, err := s.applications.Create(ctx, app)
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to submit application: %w", err)
	}

	return created, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (application.Application, error) {
	return s.applications.GetByID(ctx, id)
}

func (s *applicationService) List(ctx context.Context, filter application.ApplicationFilter) ([]application.Application, int64, error) {
	return s.applications.List(ctx, filter)
}

// UpdateStatus validates the transition against the current record before
// persisting anything. A same-status request succeeds without a write.
func (s *applicationService) UpdateStatus(ctx context.Context, actor user.Actor, req application.UpdateStatusRequest) (application.Application, error) {
	app, err := s.applications.GetByID(ctx, req.ID)
	if err != nil {
		return application.Application{}, err
	}

	next, err := workflow.Transition(workflow.Request{
		Entity:  workflow.EntityApplication,
		Current: string(app.Status),
		Target:  req.Status,
		Role:    actor.Role,
	})
	if err != nil {
		return application.Application{}, err
	}

	if next == string(app.Status) {
		return app, nil
	}

	updated, err := s.applications.UpdateStatus(ctx, app.ID, application.Status(next))
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to update application status: %w", err)
	}

	return updated, nil
}

// AddNote appends to the application's note log. Notes are append-only;
// there is no edit or delete.
func (s *applicationService) AddNote(ctx context.Context, actor user.Actor, req application.AddNoteRequest) (application.Application, error) {
	if !user.HasPermission(actor.Role, user.PermissionApplicationManage) {
		return application.Application{}, workflow.ErrForbidden
	}

	note := application.Note{
		Author:    actor.UserID,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}

	updated, err := s.applications.AppendNote(ctx, req.ID, note)
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to add application note: %w", err)
	}

	return updated, nil
}
