package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	"github.com/opsgrid/workforce-backend-go/internal/handler/http/response"
	attendanceservice "github.com/opsgrid/workforce-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendanceservice.AttendanceService
}

func NewAttendanceHandler(attendanceService attendanceservice.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Correct implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CorrectAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CorrectAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	corrected, err := h.attendanceService.Correct(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, corrected)
}

// Get implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	page, limit := paging(r)
	filter := attendance.AttendanceFilter{Page: page, Limit: limit}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			filter.DateFrom = &from
		}
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			filter.DateTo = &to
		}
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := attendance.Status(statusStr)
		filter.Status = &status
	}

	records, total, err := h.attendanceService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, listMeta(page, limit, total))
}
