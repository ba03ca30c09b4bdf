package complaints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hvacops/internal/api"
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
	r.Route("/complaints", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{complaintID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Put("/status", h.handleSetStatus)
			r.Put("/payment", h.handleSetPayment)
			r.Put("/service-details", h.handleServiceDetails)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	priority := r.URL.Query().Get("priority")
	api.Success(w, h.Service.List(status, priority), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	complaint, err := h.Service.Get(chi.URLParam(r, "complaintID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "service request not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, complaint, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload Complaint
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("title", payload.Title, "service title is required")
	v.Required("customerName", payload.CustomerName, "customer is required")
	v.Enum("priority", payload.Priority, Priorities, "unknown priority")
	v.Enum("serviceType", payload.ServiceType, ServiceTypes, "unknown service type")
	v.NonNegative("estimatedAmount", payload.EstimatedAmount, "estimated amount must not be negative")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	if payload.Priority == "" {
		payload.Priority = PriorityMedium
	}

	api.Created(w, h.Service.Create(payload), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload Complaint
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	complaint, err := h.Service.Update(chi.URLParam(r, "complaintID"), payload)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "service request not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, complaint, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	complaint, err := h.Service.SetStatus(chi.URLParam(r, "complaintID"), payload.Status)
	if err != nil {
		failServiceError(w, r, err)
		return
	}
	api.Success(w, complaint, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetPayment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PaymentStatus string  `json:"paymentStatus"`
		PaidAmount    float64 `json:"paidAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	complaint, err := h.Service.SetPayment(chi.URLParam(r, "complaintID"), payload.PaymentStatus, payload.PaidAmount)
	if err != nil {
		failServiceError(w, r, err)
		return
	}
	api.Success(w, complaint, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleServiceDetails(w http.ResponseWriter, r *http.Request) {
	var payload ServiceDetail
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	complaint, err := h.Service.UpdateServiceDetails(chi.URLParam(r, "complaintID"), payload)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "service request not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, complaint, middleware.GetRequestID(r.Context()))
}

func failServiceError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, store.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "service request not found", requestID)
	case errors.Is(err, ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "complaint_update_failed", "failed to update service request", requestID)
	}
}
