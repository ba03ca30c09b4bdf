package salaries

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hvacops/internal/api"
	"hvacops/internal/export"
	"hvacops/internal/middleware"
	"hvacops/internal/shared"
	"hvacops/internal/store"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/export", h.handleExport)
		r.Route("/{salaryID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdateInputs)
			r.Put("/status", h.handleSetStatus)
			r.Get("/payslip", h.handlePayslip)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.List(r.URL.Query().Get("status")), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.Service.Get(chi.URLParam(r, "salaryID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "salary record not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload SalaryRecord
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if v := validateInputs(&payload); v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	api.Created(w, h.Service.Create(payload), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateInputs(w http.ResponseWriter, r *http.Request) {
	var payload SalaryRecord
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if v := validateInputs(&payload); v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	record, err := h.Service.UpdateInputs(chi.URLParam(r, "salaryID"), payload)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "salary record not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.SetStatus(chi.URLParam(r, "salaryID"), payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "salary record not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, ErrInvalidStatus):
			api.Fail(w, http.StatusBadRequest, "invalid_status", err.Error(), middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "salary_update_failed", "failed to update salary record", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	data := ExportCSV(h.Service.List(""))
	filename := export.Filename("salary_records", shared.FormatDate(time.Now().UTC()), "csv")

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if _, err := w.Write(data); err != nil {
		slog.Warn("salary export write failed", "err", err)
	}
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	record, err := h.Service.Get(chi.URLParam(r, "salaryID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "salary record not found", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := PayslipPDF(record)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=payslip_"+record.ID+".pdf")
	if _, err := w.Write(data); err != nil {
		slog.Warn("payslip write failed", "err", err)
	}
}

func validateInputs(record *SalaryRecord) *shared.Validator {
	v := shared.NewValidator()
	v.Required("employeeName", record.EmployeeName, "employee is required")
	v.Required("month", record.Month, "month is required")
	v.Enum("paymentMethod", record.PaymentMethod, PaymentMethods, "unknown payment method")
	v.NonNegative("baseSalary", record.BaseSalary, "base salary must not be negative")
	v.NonNegative("overtime", record.Overtime, "overtime must not be negative")
	v.NonNegative("bonus", record.Bonus, "bonus must not be negative")
	v.NonNegative("deductions", record.Deductions, "deductions must not be negative")
	if record.PaidLeavesTaken < 0 || record.UnpaidLeavesTaken < 0 || record.CasualLeavesTaken < 0 {
		v.Add("leaves", "leave counts must not be negative")
	}
	return v
}
