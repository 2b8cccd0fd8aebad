package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
	"github.com/opsgrid/workforce-backend-go/internal/domain/workflow"
	"github.com/opsgrid/workforce-backend-go/internal/handler/http/response"
	applicationservice "github.com/opsgrid/workforce-backend-go/internal/service/application"
)

type ApplicationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	AddNote(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandlerImpl struct {
	applicationService applicationservice.ApplicationService
}

func NewApplicationHandler(applicationService applicationservice.ApplicationService) ApplicationHandler {
	return &ApplicationHandlerImpl{applicationService: applicationService}
}

// Submit implements ApplicationHandler. Public endpoint; no auth.
func (h *ApplicationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req application.SubmitApplicationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitApplication decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.applicationService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted", created)
}

// applicationDetail is the single-record payload: the record plus the
// statuses it can legally move to, so the board renders only valid actions.
type applicationDetail struct {
	application.Application
	AllowedStatuses []string `json:"allowed_statuses"`
}

// Get implements ApplicationHandler.
func (h *ApplicationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	app, err := h.applicationService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, applicationDetail{
		Application:     app,
		AllowedStatuses: workflow.LegalTargets(workflow.EntityApplication, string(app.Status)),
	})
}

// List implements ApplicationHandler.
func (h *ApplicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paging(r)
	filter := application.ApplicationFilter{Page: page, Limit: limit}

	if jobID := r.URL.Query().Get("job_id"); jobID != "" {
		filter.JobID = &jobID
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := application.Status(statusStr)
		filter.Status = &status
	}

	apps, total, err := h.applicationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, apps, listMeta(page, limit, total))
}

// UpdateStatus implements ApplicationHandler.
func (h *ApplicationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req application.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateApplicationStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.applicationService.UpdateStatus(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// AddNote implements ApplicationHandler.
func (h *ApplicationHandlerImpl) AddNote(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req application.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddApplicationNote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.applicationService.AddNote(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}
