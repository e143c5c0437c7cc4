package api

import (
	"net/http"

	"legalwatch/internal/domain"
)

type searchProcessesRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Kind      string `json:"kind" validate:"required,oneof=tax_id bar_number case_number"`
	Value     string `json:"value" validate:"required"`
}

type processDetailRequest struct {
	AccountID          string `json:"account_id" validate:"required"`
	CaseNumber         string `json:"case_number" validate:"required"`
	IncludeAttachments bool   `json:"include_attachments"`
}

type taxIDRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	TaxID     string `json:"tax_id" validate:"required"`
}

type gazetteSearchRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Query     string `json:"query" validate:"required,max=500"`
}

func (s *Server) searchProcesses(w http.ResponseWriter, r *http.Request) {
	var req searchProcessesRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.acquirer.SearchProcesses(r.Context(), req.AccountID, domain.MonitoringKind(req.Kind), req.Value)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (s *Server) processDetail(w http.ResponseWriter, r *http.Request) {
	var req processDetailRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.acquirer.ProcessDetail(r.Context(), req.AccountID, req.CaseNumber, req.IncludeAttachments)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (s *Server) registration(w http.ResponseWriter, r *http.Request) {
	var req taxIDRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.acquirer.Registration(r.Context(), req.AccountID, req.TaxID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (s *Server) criminalRecord(w http.ResponseWriter, r *http.Request) {
	var req taxIDRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.acquirer.CriminalRecord(r.Context(), req.AccountID, req.TaxID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (s *Server) gazetteSearch(w http.ResponseWriter, r *http.Request) {
	var req gazetteSearchRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.acquirer.GazetteSearch(r.Context(), req.AccountID, req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}
