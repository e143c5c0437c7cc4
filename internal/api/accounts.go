package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"legalwatch/internal/domain"
)

const defaultNotificationLimit = 50

type addCreditsRequest struct {
	Credits int64  `json:"credits" validate:"required,gt=0"`
	Type    string `json:"type" validate:"required,oneof=purchase refund"`
	Label   string `json:"label" validate:"max=200"`
}

type balanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := s.accounts.Account(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (s *Server) listLedger(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entries, err := s.accounts.Entries(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) addCredits(w http.ResponseWriter, r *http.Request) {
	var req addCreditsRequest
	if err := s.binder.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	label := req.Label
	if label == "" {
		label = req.Type
	}

	accountID := chi.URLParam(r, "id")
	balance, err := s.accounts.Credit(r.Context(), accountID, req.Credits, domain.EntryType(req.Type), label)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{AccountID: accountID, Balance: balance})
}

type grantResponse struct {
	AccountID  string `json:"account_id"`
	ResourceID string `json:"resource_id"`
	Granted    bool   `json:"granted"`
}

// getGrant reports whether the account already paid for a resource such as
// "process:<digits>", so clients can skip the price prompt.
func (s *Server) getGrant(w http.ResponseWriter, r *http.Request) {
	resourceID := r.URL.Query().Get("resource")
	if resourceID == "" {
		s.writeError(w, r, &ValidationError{Field: "resource", Message: "resource is required"})
		return
	}

	accountID := chi.URLParam(r, "id")
	granted, err := s.accounts.HasGrant(r.Context(), accountID, resourceID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, grantResponse{AccountID: accountID, ResourceID: resourceID, Granted: granted})
}

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, defaultNotificationLimit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	list, err := s.notifications.ListNotifications(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func queryLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, &ValidationError{Field: "limit", Message: "limit must be a positive integer"}
	}
	return limit, nil
}
