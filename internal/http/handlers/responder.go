package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/player-profile-service/internal/http/middleware"
	"github.com/preston-bernstein/player-profile-service/internal/http/requestutil"
	"github.com/preston-bernstein/player-profile-service/internal/logging"
)

// result is the body of every mutating endpoint and of all API errors.
type result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	// Profile text goes back exactly as it was stored.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeSuccess(w http.ResponseWriter, message string, logger *slog.Logger) {
	writeJSON(w, http.StatusOK, result{Success: true, Message: message}, logger)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.RequestIDHeader)
	}
	writeJSON(w, status, result{Success: false, Message: message, RequestID: reqID}, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

// isTooLarge reports whether err came from the body size ceiling.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
