package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/job"
	"github.com/opsgrid/workforce-backend-go/internal/handler/http/response"
	jobservice "github.com/opsgrid/workforce-backend-go/internal/service/job"
)

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPublic(w http.ResponseWriter, r *http.Request)
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService jobservice.JobService
}

func NewJobHandler(jobService jobservice.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// Create implements JobHandler.
func (h *JobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateJob decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.jobService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created", created)
}

// Get implements JobHandler.
func (h *JobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	posting, err := h.jobService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, posting)
}

// List implements JobHandler.
func (h *JobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// ListPublic serves the careers page; only open postings are visible.
func (h *JobHandlerImpl) ListPublic(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *JobHandlerImpl) list(w http.ResponseWriter, r *http.Request, openOnly bool) {
	page, limit := paging(r)
	filter := job.JobFilter{
		OpenOnly: openOnly,
		Page:     page,
		Limit:    limit,
	}
	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}

	jobs, total, err := h.jobService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, jobs, listMeta(page, limit, total))
}

// Open implements JobHandler.
func (h *JobHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	h.setOpen(w, r, true)
}

// Close implements JobHandler.
func (h *JobHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	h.setOpen(w, r, false)
}

func (h *JobHandlerImpl) setOpen(w http.ResponseWriter, r *http.Request, open bool) {
	posting, err := h.jobService.SetOpen(r.Context(), chi.URLParam(r, "id"), open)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, posting)
}
