package handlers

import (
	"io"
	"log/slog"
	"net/http"

	domainprofile "github.com/preston-bernstein/player-profile-service/internal/domain/profile"
	"github.com/preston-bernstein/player-profile-service/internal/logging"
)

// GetProfile returns the stored profile document. It always succeeds.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.profiles.Get(r.Context()), h.logger)
}

// SaveProfile replaces the stored profile with the request body.
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		if isTooLarge(err) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "Request body too large", logger)
			return
		}
		writeError(w, r, http.StatusBadRequest, "Failed to read request body", logger)
		return
	}
	doc, err := domainprofile.Parse(body)
	if err != nil {
		logging.Warn(logger, "rejected profile payload", slog.Any("error", err))
		writeError(w, r, http.StatusBadRequest, "Profile data must be a JSON object", logger)
		return
	}

	if err := h.profiles.Save(r.Context(), doc); err != nil {
		logging.Error(logger, "profile save failed", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to save data", logger)
		return
	}
	writeSuccess(w, "Data saved successfully", logger)
}
