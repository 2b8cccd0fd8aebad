package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
	"github.com/opsgrid/workforce-backend-go/internal/domain/job"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/domain/workflow"
)

type fakeApplicationRepo struct {
	apps map[string]application.Application

	updateCalls int
}

func newFakeApplicationRepo(apps ...application.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{apps: make(map[string]application.Application)}
	for _, a := range apps {
		repo.apps[a.ID] = a
	}
	return repo
}

func (f *fakeApplicationRepo) Create(_ context.Context, app application.Application) (application.Application, error) {
	app.ID = "app-" + app.ApplicantName
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (application.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) List(_ context.Context, _ application.ApplicationFilter) ([]application.Application, int64, error) {
	var all []application.Application
	for _, a := range f.apps {
		all = append(all, a)
	}
	return all, int64(len(all)), nil
}

func (f *fakeApplicationRepo) ListAll(ctx context.Context) ([]application.Application, error) {
	all, _, err := f.List(ctx, application.ApplicationFilter{})
	return all, err
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status application.Status) (application.Application, error) {
	f.updateCalls++
	app, ok := f.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	app.Status = status
	app.UpdatedAt = time.Now()
	f.apps[id] = app
	return app, nil
}

func (f *fakeApplicationRepo) AppendNote(_ context.Context, id string, note application.Note) (application.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	app.Notes = append(app.Notes, note)
	f.apps[id] = app
	return app, nil
}

type fakeJobRepo struct {
	jobs map[string]job.Job
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) { return j, nil }

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) List(_ context.Context, _ job.JobFilter) ([]job.Job, int64, error) {
	return nil, 0, nil
}

func (f *fakeJobRepo) SetOpen(_ context.Context, _ string, _ bool) error { return nil }

func TestSubmit_OpenJob(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := &fakeJobRepo{jobs: map[string]job.Job{
		"job-1": {ID: "job-1", Title: "Backend Engineer", IsOpen: true},
	}}
	svc := NewApplicationService(apps, jobs)

	created, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID:         "job-1",
		ApplicantName: "Jane",
		Email:         "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, created.Status)
}

func TestSubmit_ClosedJob(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := &fakeJobRepo{jobs: map[string]job.Job{
		"job-1": {ID: "job-1", IsOpen: false},
	}}
	svc := NewApplicationService(apps, jobs)

	_, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID:         "job-1",
		ApplicantName: "Jane",
		Email:         "jane@example.com",
	})
	assert.ErrorIs(t, err, job.ErrJobClosed)
}

func TestUpdateStatus_LegalTransition(t *testing.T) {
	apps := newFakeApplicationRepo(application.Application{
		ID:     "app-1",
		Status: application.StatusPending,
	})
	svc := NewApplicationService(apps, &fakeJobRepo{})

	hr := user.Actor{UserID: "u-1", Role: user.RoleHR}

	updated, err := svc.UpdateStatus(context.Background(), hr, application.UpdateStatusRequest{
		ID:     "app-1",
		Status: string(application.StatusReviewing),
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusReviewing, updated.Status)
	assert.Equal(t, 1, apps.updateCalls)
}

func TestUpdateStatus_SameStatusSkipsWrite(t *testing.T) {
	apps := newFakeApplicationRepo(application.Application{
		ID:     "app-1",
		Status: application.StatusReviewing,
	})
	svc := NewApplicationService(apps, &fakeJobRepo{})

	hr := user.Actor{UserID: "u-1", Role: user.RoleHR}

	updated, err := svc.UpdateStatus(context.Background(), hr, application.UpdateStatusRequest{
		ID:     "app-1",
		Status: string(application.StatusReviewing),
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusReviewing, updated.Status)
	assert.Zero(t, apps.updateCalls, "same-status request must not write")
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	apps := newFakeApplicationRepo(application.Application{
		ID:     "app-1",
		Status: application.StatusPending,
	})
	svc := NewApplicationService(apps, &fakeJobRepo{})

	hr := user.Actor{UserID: "u-1", Role: user.RoleHR}

	_, err := svc.UpdateStatus(context.Background(), hr, application.UpdateStatusRequest{
		ID:     "app-1",
		Status: string(application.StatusInterview),
	})
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
	assert.Zero(t, apps.updateCalls, "failed transition must not write")
}

func TestUpdateStatus_RoleDenied(t *testing.T) {
	apps := newFakeApplicationRepo(application.Application{
		ID:     "app-1",
		Status: application.StatusPending,
	})
	svc := NewApplicationService(apps, &fakeJobRepo{})

	manager := user.Actor{UserID: "u-2", Role: user.RoleManager}

	_, err := svc.UpdateStatus(context.Background(), manager, application.UpdateStatusRequest{
		ID:     "app-1",
		Status: string(application.StatusReviewing),
	})
	assert.ErrorIs(t, err, workflow.ErrForbidden)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), &fakeJobRepo{})

	hr := user.Actor{UserID: "u-1", Role: user.RoleHR}

	_, err := svc.UpdateStatus(context.Background(), hr, application.UpdateStatusRequest{
		ID:     "missing",
		Status: string(application.StatusReviewing),
	})
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}

func TestAddNote_AppendsWithAuthor(t *testing.T) {
	apps := newFakeApplicationRepo(application.Application{
		ID:     "app-1",
		Status: application.StatusPending,
		Notes:  []application.Note{{Author: "u-0", Body: "first"}},
	})
	svc := NewApplicationService(apps, &fakeJobRepo{})

	hr := user.Actor{UserID: "u-1", Role: user.RoleHR}

	updated, err := svc.AddNote(context.Background(), hr, application.AddNoteRequest{
		ID:   "app-1",
		Body: "second",
	})
	require.NoError(t, err)
	require.Len(t, updated.Notes, 2)
	assert.Equal(t, "u-1", updated.Notes[1].Author)
	assert.Equal(t, "second", updated.Notes[1].Body)
}

func TestAddNote_EmployeeForbidden(t *testing.T) {
	apps := newFakeApplicationRepo(application.Application{ID: "app-1"})
	svc := NewApplicationService(apps, &fakeJobRepo{})

	emp := user.Actor{UserID: "u-3", Role: user.RoleEmployee}

	_, err := svc.AddNote(context.Background(), emp, application.AddNoteRequest{
		ID:   "app-1",
		Body: "note",
	})
	assert.ErrorIs(t, err, workflow.ErrForbidden)
}
