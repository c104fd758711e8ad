package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/player-profile-service/internal/app/admin"
	"github.com/preston-bernstein/player-profile-service/internal/domain/auth"
	"github.com/preston-bernstein/player-profile-service/internal/logging"
)

// AuthStatus reports whether an admin has registered, and nothing else.
func (h *Handler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Status(r.Context()), h.logger)
}

// Login checks the posted credentials against the stored admin identity.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	creds, ok := decodeLenient[auth.Credentials](w, r, logger)
	if !ok {
		return
	}
	if err := h.admin.Login(r.Context(), creds); err != nil {
		writeError(w, r, http.StatusUnauthorized, "Invalid credentials", logger)
		return
	}
	writeSuccess(w, "Login successful", logger)
}

// Register replaces the admin identity when the registration code matches.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	reg, ok := decodeLenient[auth.Registration](w, r, logger)
	if !ok {
		return
	}
	err := h.admin.Register(r.Context(), reg)
	switch {
	case err == nil:
		writeSuccess(w, "Admin registered successfully", logger)
	case errors.Is(err, admin.ErrInvalidRegistrationCode):
		writeError(w, r, http.StatusBadRequest, "Invalid registration code", logger)
	case errors.Is(err, admin.ErrPasswordTooLong):
		writeError(w, r, http.StatusBadRequest, "Password must be at most 72 bytes", logger)
	case errors.Is(err, admin.ErrAdminAlreadyRegistered):
		writeError(w, r, http.StatusConflict, "Admin already registered", logger)
	default:
		logging.Error(logger, "admin registration failed", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to register admin", logger)
	}
}

// decodeLenient decodes a JSON body. A malformed or empty body yields the zero
// value, so the request proceeds with absent fields. Only an oversized body
// stops the request; ok reports whether to continue.
func decodeLenient[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (T, bool) {
	var dest T
	err := json.NewDecoder(r.Body).Decode(&dest)
	if err == nil {
		return dest, true
	}
	if isTooLarge(err) {
		writeError(w, r, http.StatusRequestEntityTooLarge, "Request body too large", logger)
		return dest, false
	}
	logging.Debug(logger, "ignoring malformed auth payload", slog.Any("error", err))
	var zero T
	return zero, true
}
