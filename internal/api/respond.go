package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"legalwatch/internal/acquisition"
	"legalwatch/internal/domain"
)

// acquisitionResponse is the envelope of every metered lookup.
type acquisitionResponse struct {
	Success         bool            `json:"success"`
	FromCache       bool            `json:"fromCache"`
	CreditsConsumed int64           `json:"creditsConsumed"`
	Provider        string          `json:"provider,omitempty"`
	Data            json.RawMessage `json:"data"`
}

type errorResponse struct {
	Error     string                   `json:"error"`
	Field     string                   `json:"field,omitempty"`
	Required  *int64                   `json:"required,omitempty"`
	Available *int64                   `json:"available,omitempty"`
	Failures  []domain.ProviderFailure `json:"failures,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeResult(w http.ResponseWriter, res *acquisition.Result) {
	writeJSON(w, http.StatusOK, acquisitionResponse{
		Success:         true,
		FromCache:       res.FromCache,
		CreditsConsumed: res.CreditsCharged,
		Provider:        res.Provider,
		Data:            res.Payload,
	})
}

// writeError maps the domain error taxonomy onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation   *ValidationError
		insufficient *domain.InsufficientCreditsError
		allFailed    *domain.AllProvidersFailedError
	)

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Message, Field: validation.Field})
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidAmount):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusPaymentRequired, errorResponse{
			Error:     "insufficient credits",
			Required:  &insufficient.Required,
			Available: &insufficient.Available,
		})
	case errors.As(err, &allFailed):
		writeJSON(w, providerFailureStatus(allFailed), errorResponse{Error: allFailed.Error(), Failures: allFailed.Failures})
	case errors.Is(err, domain.ErrResourceNotFound), errors.Is(err, domain.ErrAccountNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrDuplicateJob):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func providerFailureStatus(e *domain.AllProvidersFailedError) int {
	switch {
	case len(e.Failures) == 0:
		return http.StatusServiceUnavailable
	case e.AllTimedOut():
		return http.StatusGatewayTimeout
	case e.AllNotFound():
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
