package store

import (
	"log/slog"

	"github.com/preston-bernstein/player-profile-service/internal/domain/auth"
	"github.com/preston-bernstein/player-profile-service/internal/domain/profile"
	"github.com/preston-bernstein/player-profile-service/internal/metrics"
)

// Document labels used in logs and metrics.
const (
	DocumentProfile = "profile"
	DocumentAuth    = "auth"
)

// ProfileStore persists the profile document.
type ProfileStore struct {
	file *JSONFile[profile.Document]
}

func NewProfileStore(path string, logger *slog.Logger, recorder *metrics.Recorder) *ProfileStore {
	return &ProfileStore{
		file: NewJSONFile(DocumentProfile, path, profile.DefaultDocument, logger, recorder),
	}
}

// LoadProfile returns the stored profile or the default one.
func (s *ProfileStore) LoadProfile() profile.Document {
	return s.file.Load()
}

// SaveProfile overwrites the stored profile.
func (s *ProfileStore) SaveProfile(doc profile.Document) error {
	return s.file.Save(doc)
}

// File exposes the underlying handle for initialization and readiness checks.
func (s *ProfileStore) File() *JSONFile[profile.Document] {
	return s.file
}

// AuthStore persists the admin identity.
type AuthStore struct {
	file *JSONFile[auth.Document]
}

// NewAuthStore constructs an AuthStore. defaults must be cheap; callers hash the
// placeholder password once and close over the result.
func NewAuthStore(path string, defaults func() auth.Document, logger *slog.Logger, recorder *metrics.Recorder) *AuthStore {
	return &AuthStore{
		file: NewJSONFile(DocumentAuth, path, defaults, logger, recorder),
	}
}

func (s *AuthStore) LoadAuth() auth.Document {
	return s.file.Load()
}

func (s *AuthStore) SaveAuth(doc auth.Document) error {
	return s.file.Save(doc)
}

// UpdateAuth applies fn to the stored identity atomically with respect to other callers.
func (s *AuthStore) UpdateAuth(fn func(auth.Document) (auth.Document, error)) error {
	return s.file.Update(fn)
}

func (s *AuthStore) File() *JSONFile[auth.Document] {
	return s.file
}
