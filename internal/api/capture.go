package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type startCaptureRequest struct {
	AccountID  string `json:"account_id" validate:"required"`
	CaseNumber string `json:"case_number" validate:"required"`
}

type startCaptureResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

func (s *Server) startCapture(w http.ResponseWriter, r *http.Request) {
	var req startCaptureRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	job, err := s.captures.StartCapture(r.Context(), req.CaseNumber, req.AccountID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, startCaptureResponse{JobID: job.ID, Status: string(job.Status)})
}

func (s *Server) getCapture(w http.ResponseWriter, r *http.Request) {
	job, err := s.captures.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}
