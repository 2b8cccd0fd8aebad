package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/payroll"
	"github.com/opsgrid/workforce-backend-go/internal/handler/http/response"
	payrollservice "github.com/opsgrid/workforce-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payrollservice.PayrollService
}

func NewPayrollHandler(payrollService payrollservice.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Run implements PayrollHandler.
func (h *PayrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RunPayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	run, err := h.payrollService.Run(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run created", run)
}

// Approve implements PayrollHandler.
func (h *PayrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	run, err := h.payrollService.Approve(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, run)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	run, err := h.payrollService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, run)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paging(r)
	filter := payroll.PayrollRunFilter{Page: page, Limit: limit}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.Year = &year
		}
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := payroll.Status(statusStr)
		filter.Status = &status
	}

	runs, total, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, runs, listMeta(page, limit, total))
}
