package customers

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
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/export", h.handleExport)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Put("/status", h.handleSetStatus)
			r.Post("/addresses", h.handleAddAddress)
			r.Put("/monthly/{month}", h.handleUpsertMetrics)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.List(r.URL.Query().Get("status")), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Service.Get(chi.URLParam(r, "customerID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "customer not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, customer, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload Customer
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "customer name is required")
	v.Required("phone", payload.Phone, "phone is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	api.Created(w, h.Service.Create(payload), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload Customer
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	customer, err := h.Service.Update(chi.URLParam(r, "customerID"), payload)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "customer not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, customer, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	customer, err := h.Service.SetStatus(chi.URLParam(r, "customerID"), payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "customer not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, ErrInvalidStatus):
			api.Fail(w, http.StatusBadRequest, "invalid_status", err.Error(), middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "customer_update_failed", "failed to update customer", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, customer, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAddAddress(w http.ResponseWriter, r *http.Request) {
	var payload Address
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("address", payload.Address, "address text is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	customer, err := h.Service.AddAddress(chi.URLParam(r, "customerID"), payload)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "customer not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, customer, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpsertMetrics(w http.ResponseWriter, r *http.Request) {
	var payload MonthlyMetrics
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	customer, err := h.Service.UpsertMonthlyMetrics(chi.URLParam(r, "customerID"), chi.URLParam(r, "month"), payload)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "customer not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, customer, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	data := ExportCSV(h.Service.List(""))
	filename := export.Filename("customers", shared.FormatDate(time.Now().UTC()), "csv")

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if _, err := w.Write(data); err != nil {
		slog.Warn("customer export write failed", "err", err)
	}
}
