package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
	"github.com/opsgrid/workforce-backend-go/internal/handler/http/response"
	leadservice "github.com/opsgrid/workforce-backend-go/internal/service/lead"
)

type LeadHandler interface {
	Capture(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type LeadHandlerImpl struct {
	leadService leadservice.LeadService
}

func NewLeadHandler(leadService leadservice.LeadService) LeadHandler {
	return &LeadHandlerImpl{leadService: leadService}
}

// Capture implements LeadHandler. Public endpoint hit by the chatbot widget.
func (h *LeadHandlerImpl) Capture(w http.ResponseWriter, r *http.Request) {
	var req lead.CaptureLeadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CaptureLead decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leadService.Capture(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Lead captured", created)
}

// Get implements LeadHandler.
func (h *LeadHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.leadService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// List implements LeadHandler.
func (h *LeadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paging(r)
	filter := lead.LeadFilter{Page: page, Limit: limit}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := lead.Status(statusStr)
		filter.Status = &status
	}

	items, total, err := h.leadService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, items, listMeta(page, limit, total))
}

// UpdateStatus implements LeadHandler.
func (h *LeadHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req lead.UpdateLeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeadStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.leadService.UpdateStatus(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}
