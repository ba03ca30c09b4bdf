package reports

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hvacops/internal/api"
	"hvacops/internal/export"
	"hvacops/internal/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/export", h.handleExport)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	month, year := periodParams(r)
	api.Success(w, h.Service.Build(month, year), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	month, year := periodParams(r)
	report := h.Service.Build(month, year)
	period := month + "_" + strconv.Itoa(year)

	if r.URL.Query().Get("format") == "xlsx" {
		buf, err := ExportExcel(report)
		if err != nil {
			slog.Warn("report workbook render failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "report_export_failed", "failed to render report", middleware.GetRequestID(r.Context()))
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename("business_report", period, "xlsx"))
		if _, err := w.Write(buf.Bytes()); err != nil {
			slog.Warn("report workbook write failed", "err", err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename("business_report", period, "csv"))
	if _, err := w.Write(ExportCSV(report)); err != nil {
		slog.Warn("report csv write failed", "err", err)
	}
}

func periodParams(r *http.Request) (string, int) {
	now := time.Now().UTC()
	month := r.URL.Query().Get("month")
	if month == "" {
		month = now.Month().String()
	}
	year := now.Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			year = parsed
		}
	}
	return month, year
}
