package leave

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
	r.Route("/leave-requests", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleSubmit)
		r.Route("/{requestID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Post("/approve", h.handleApprove)
			r.Post("/reject", h.handleReject)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.List(r.URL.Query().Get("status")), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	request, err := h.Service.Get(chi.URLParam(r, "requestID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID   string `json:"employeeId"`
		EmployeeName string `json:"employeeName"`
		LeaveType    string `json:"leaveType"`
		StartDate    string `json:"startDate"`
		EndDate      string `json:"endDate"`
		Reason       string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeName", payload.EmployeeName, "employee is required")
	v.Required("reason", payload.Reason, "reason is required")
	v.Enum("leaveType", payload.LeaveType, Types, "leave type must be paid or casual")
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if startOK && endOK {
		v.DateOrder("startDate", start, "endDate", end)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	request, err := h.Service.Submit(Request{
		EmployeeID:   payload.EmployeeID,
		EmployeeName: payload.EmployeeName,
		LeaveType:    payload.LeaveType,
		StartDate:    start,
		EndDate:      end,
		Reason:       payload.Reason,
	})
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.handleReview(w, r, h.Service.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.handleReview(w, r, h.Service.Reject)
}

func (h *Handler) handleReview(w http.ResponseWriter, r *http.Request, review func(id, reviewedBy, comments string) (Request, error)) {
	var payload struct {
		ReviewedBy string `json:"reviewedBy"`
		Comments   string `json:"comments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.ReviewedBy == "" {
		payload.ReviewedBy = "Admin"
	}

	request, err := review(chi.URLParam(r, "requestID"), payload.ReviewedBy, payload.Comments)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, ErrAlreadyReviewed):
			api.Fail(w, http.StatusConflict, "already_reviewed", err.Error(), middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "leave_review_failed", "failed to review leave request", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}
