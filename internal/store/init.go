package store

import (
	"log/slog"

	"github.com/preston-bernstein/player-profile-service/internal/logging"
)

// Initializer is a document that can create itself with default content.
type Initializer interface {
	Name() string
	Path() string
	EnsureExists() (bool, error)
}

// Checker reports whether a document can currently be read.
type Checker interface {
	Name() string
	Check() error
}

// EnsureInitialized creates every absent document with its default content.
// Existing files are never touched, so repeated calls are no-ops.
func EnsureInitialized(logger *slog.Logger, docs ...Initializer) error {
	for _, doc := range docs {
		created, err := doc.EnsureExists()
		if err != nil {
			return err
		}
		if created {
			logging.Info(logger, "created default document",
				slog.String(logging.FieldDocument, doc.Name()),
				slog.String(logging.FieldFile, doc.Path()),
			)
		}
	}
	return nil
}
