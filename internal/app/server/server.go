package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hvacops/internal/api"
	"hvacops/internal/complaints"
	"hvacops/internal/config"
	"hvacops/internal/customers"
	"hvacops/internal/employees"
	"hvacops/internal/leave"
	"hvacops/internal/metrics"
	"hvacops/internal/middleware"
	"hvacops/internal/reports"
	"hvacops/internal/salaries"
)

type App struct {
	Config config.Config
	Router http.Handler

	Employees  *employees.Service
	Customers  *customers.Service
	Complaints *complaints.Service
	Leave      *leave.Service
	Salaries   *salaries.Service
}

// New wires the services and the HTTP surface. The App is returned rather
// than started so tests can mount Router on httptest.
func New(cfg config.Config) *App {
	employeeSvc := employees.NewService()
	customerSvc := customers.NewService()
	complaintSvc := complaints.NewService(customerSvc)
	leaveSvc := leave.NewService(employeeSvc)
	salarySvc := salaries.NewService()
	reportSvc := reports.NewService(complaintSvc, salarySvc)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		employees.NewHandler(employeeSvc).RegisterRoutes(r)
		customers.NewHandler(customerSvc).RegisterRoutes(r)
		complaints.NewHandler(complaintSvc).RegisterRoutes(r)
		leave.NewHandler(leaveSvc).RegisterRoutes(r)
		salaries.NewHandler(salarySvc).RegisterRoutes(r)
		reports.NewHandler(reportSvc).RegisterRoutes(r)
	})

	app := &App{
		Config:     cfg,
		Router:     router,
		Employees:  employeeSvc,
		Customers:  customerSvc,
		Complaints: complaintSvc,
		Leave:      leaveSvc,
		Salaries:   salarySvc,
	}

	if cfg.RunSeed {
		app.seed()
	}
	return app
}
