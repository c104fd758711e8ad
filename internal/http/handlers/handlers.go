package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/player-profile-service/internal/app/admin"
	"github.com/preston-bernstein/player-profile-service/internal/app/profile"
	"github.com/preston-bernstein/player-profile-service/internal/logging"
	"github.com/preston-bernstein/player-profile-service/internal/timeutil"
)

type nowFunc func() time.Time

// ReadinessCheck is a dependency that must be usable before traffic is accepted.
type ReadinessCheck interface {
	Name() string
	Check() error
}

// Handler wires HTTP routes to the profile and admin services.
type Handler struct {
	profiles *profile.Service
	admin    *admin.Service
	checks   []ReadinessCheck
	logger   *slog.Logger
	now      nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(profiles *profile.Service, adminSvc *admin.Service, logger *slog.Logger, checks ...ReadinessCheck) *Handler {
	return &Handler{
		profiles: profiles,
		admin:    adminSvc,
		checks:   checks,
		logger:   logger,
		now:      time.Now,
	}
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": timeutil.FormatTimestamp(h.now()),
	}, h.logger)
}

// Ready reports whether both documents can be read from disk.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	for _, check := range h.checks {
		if err := check.Check(); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "readiness check failed",
				slog.String("check", check.Name()),
				slog.Any("error", err),
			)
			writeError(w, r, http.StatusServiceUnavailable, check.Name()+" document unreadable", h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// NotFound answers unknown API routes with a JSON 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known paths hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
