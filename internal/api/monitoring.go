package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"legalwatch/internal/domain"
	"legalwatch/internal/monitoring"
)

type createMonitoringRequest struct {
	AccountID   string  `json:"account_id" validate:"required"`
	Kind        string  `json:"kind" validate:"required,oneof=case_number tax_id bar_number"`
	Value       string  `json:"value" validate:"required"`
	Frequency   string  `json:"frequency" validate:"omitempty,oneof=daily weekly"`
	CallbackURL *string `json:"callback_url" validate:"omitempty,url"`
}

type webhookRequest struct {
	TrackingID string                  `json:"tracking_id" validate:"required"`
	Movements  []domain.Movement       `json:"movements"`
	Processes  []domain.ProcessSummary `json:"processes"`
}

type webhookResponse struct {
	Alerts int `json:"alerts"`
}

func (s *Server) createMonitoring(w http.ResponseWriter, r *http.Request) {
	var req createMonitoringRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	frequency := domain.Frequency(req.Frequency)
	if frequency == "" {
		frequency = domain.FrequencyDaily
	}

	m, err := s.monitorings.Create(r.Context(), monitoring.CreateRequest{
		AccountID:   req.AccountID,
		Kind:        domain.MonitoringKind(req.Kind),
		Value:       req.Value,
		Frequency:   frequency,
		CallbackURL: req.CallbackURL,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) getMonitoring(w http.ResponseWriter, r *http.Request) {
	m, err := s.monitorings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) pauseMonitoring(w http.ResponseWriter, r *http.Request) {
	m, err := s.monitorings.Pause(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) resumeMonitoring(w http.ResponseWriter, r *http.Request) {
	m, err := s.monitorings.Resume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) listAlerts(w http.ResponseWriter, r *http.Request) {
	unreadOnly := false
	if raw := r.URL.Query().Get("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, r, &ValidationError{Field: "unread", Message: "unread must be a boolean"})
			return
		}
		unreadOnly = v
	}

	alerts, err := s.monitorings.ListAlerts(r.Context(), chi.URLParam(r, "id"), unreadOnly)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) markAlertRead(w http.ResponseWriter, r *http.Request) {
	if err := s.monitorings.MarkAlertRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// webhook feeds a provider push through the same diff as a scheduled poll.
func (s *Server) webhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	n, err := s.monitorings.Ingest(r.Context(), chi.URLParam(r, "provider"), req.TrackingID, monitoring.Observation{
		Movements: req.Movements,
		Processes: req.Processes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, webhookResponse{Alerts: n})
}
