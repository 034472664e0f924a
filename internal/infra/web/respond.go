package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/infra/logging"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger, status int, msg string) {
	if status >= http.StatusInternalServerError {
		logging.With(r.Context(), logger).Error().Int("status", status).Str("path", r.URL.Path).Msg(msg)
	}
	writeJSON(w, status, errorBody{Error: msg})
}

// writeDomainError maps domain sentinel errors onto HTTP statuses.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, r, s.log, http.StatusBadRequest, "invalid request")
	case errors.Is(err, domain.ErrFreePlanNotPayable):
		writeError(w, r, s.log, http.StatusBadRequest, "the free plan cannot be purchased")
	case errors.Is(err, domain.ErrAttemptNotInProgress):
		writeError(w, r, s.log, http.StatusConflict, "attempt is not in progress")
	case errors.Is(err, domain.ErrQuestionOutsideQuiz):
		writeError(w, r, s.log, http.StatusBadRequest, "question does not belong to this quiz")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, r, s.log, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, r, s.log, http.StatusForbidden, "not allowed")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, s.log, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, r, s.log, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrTransactionCompleted):
		writeError(w, r, s.log, http.StatusConflict, "payment already completed")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, r, s.log, http.StatusConflict, "conflicting operation in progress")
	case errors.Is(err, domain.ErrPaymentGateway):
		writeError(w, r, s.log, http.StatusBadGateway, "payment provider unavailable")
	default:
		logging.With(r.Context(), s.log).Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
		writeError(w, r, s.log, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
