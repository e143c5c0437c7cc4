// Package api exposes the acquisition, account, monitoring and capture
// operations over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	acquirer      Acquirer
	accounts      Accounts
	monitorings   Monitorings
	captures      Captures
	notifications Notifications
	binder        *binder
	logger        *slog.Logger
}

func NewServer(
	acquirer Acquirer,
	accounts Accounts,
	monitorings Monitorings,
	captures Captures,
	notifications Notifications,
	logger *slog.Logger,
) *Server {
	return &Server{
		acquirer:      acquirer,
		accounts:      accounts,
		monitorings:   monitorings,
		captures:      captures,
		notifications: notifications,
		binder:        newBinder(),
		logger:        logger.With("component", "api"),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/processes/search", s.searchProcesses)
		r.Post("/processes/detail", s.processDetail)
		r.Post("/registrations", s.registration)
		r.Post("/criminal-records", s.criminalRecord)
		r.Post("/gazette/search", s.gazetteSearch)

		r.Route("/accounts/{id}", func(r chi.Router) {
			r.Get("/", s.getAccount)
			r.Get("/ledger", s.listLedger)
			r.Post("/credits", s.addCredits)
			r.Get("/grants", s.getGrant)
			r.Get("/notifications", s.listNotifications)
		})

		r.Post("/monitorings", s.createMonitoring)
		r.Route("/monitorings/{id}", func(r chi.Router) {
			r.Get("/", s.getMonitoring)
			r.Post("/pause", s.pauseMonitoring)
			r.Post("/resume", s.resumeMonitoring)
			r.Get("/alerts", s.listAlerts)
		})
		r.Post("/alerts/{id}/read", s.markAlertRead)

		r.Post("/captures", s.startCapture)
		r.Get("/captures/{id}", s.getCapture)

		r.Post("/webhooks/{provider}", s.webhook)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
