package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/resource"
	"github.com/opsgrid/workforce-backend-go/internal/handler/http/response"
	resourceservice "github.com/opsgrid/workforce-backend-go/internal/service/resource"
)

type ResourceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetPublic(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
}

type ResourceHandlerImpl struct {
	resourceService resourceservice.ResourceService
}

func NewResourceHandler(resourceService resourceservice.ResourceService) ResourceHandler {
	return &ResourceHandlerImpl{resourceService: resourceService}
}

// Create implements ResourceHandler.
func (h *ResourceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req resource.CreateResourceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateResource decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.resourceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Resource created", created)
}

// Get implements ResourceHandler.
func (h *ResourceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.resourceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// GetPublic serves a published resource by slug; drafts and scheduled
// resources 404.
func (h *ResourceHandlerImpl) GetPublic(w http.ResponseWriter, r *http.Request) {
	res, err := h.resourceService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, res)
}

// List implements ResourceHandler.
func (h *ResourceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paging(r)
	filter := resource.ResourceFilter{Page: page, Limit: limit}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := resource.Status(statusStr)
		filter.Status = &status
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	items, total, err := h.resourceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, items, listMeta(page, limit, total))
}

// Publish implements ResourceHandler.
func (h *ResourceHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	var req resource.PublishResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PublishResource decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	published, err := h.resourceService.Publish(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, published)
}

// Archive implements ResourceHandler.
func (h *ResourceHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	archived, err := h.resourceService.Archive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, archived)
}
