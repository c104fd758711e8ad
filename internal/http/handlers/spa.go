package handlers

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/preston-bernstein/player-profile-service/internal/logging"
)

const indexFile = "index.html"

// SPAHandler serves the front-end bundle. Existing files are served as-is and
// every other GET falls back to index.html so client-side routes resolve.
func SPAHandler(files fs.FS, logger *slog.Logger) http.Handler {
	return &spaHandler{files: files, logger: logger}
}

type spaHandler struct {
	files  fs.FS
	logger *slog.Logger
}

func (s *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, r, http.StatusNotFound, "not found", s.logger)
		return
	}
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		writeError(w, r, http.StatusNotFound, "not found", s.logger)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name != "" && s.serveFile(w, r, name) {
		return
	}
	if !s.serveFile(w, r, indexFile) {
		logging.Warn(loggerFromContext(r, s.logger), "front-end bundle has no index.html")
		writeError(w, r, http.StatusNotFound, "not found", s.logger)
	}
}

// serveFile writes the named regular file and reports whether it existed.
func (s *spaHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	if s.files == nil {
		return false
	}
	info, err := fs.Stat(s.files, name)
	if err != nil || info.IsDir() {
		return false
	}
	data, err := fs.ReadFile(s.files, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Error(loggerFromContext(r, s.logger), "failed to read static file", err, slog.String(logging.FieldFile, name))
		}
		return false
	}
	http.ServeContent(w, r, name, info.ModTime(), bytes.NewReader(data))
	return true
}
