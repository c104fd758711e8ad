package profile

import (
	"context"
	"fmt"
	"log/slog"

	domainprofile "github.com/preston-bernstein/player-profile-service/internal/domain/profile"
	"github.com/preston-bernstein/player-profile-service/internal/logging"
)

// Store defines the contract for persisting the profile document.
type Store interface {
	LoadProfile() domainprofile.Document
	SaveProfile(doc domainprofile.Document) error
}

// Service coordinates profile reads and whole-document replacement.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the current profile. It never fails; unreadable storage yields the default profile.
func (s *Service) Get(ctx context.Context) domainprofile.Document {
	return s.store.LoadProfile()
}

// Save replaces the stored profile with doc. Nothing is merged with the previous document.
func (s *Service) Save(ctx context.Context, doc domainprofile.Document) error {
	if err := s.store.SaveProfile(doc); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	logging.Info(logging.FromContext(ctx, s.logger), "profile saved",
		slog.String("player", doc.PlayerName()),
		slog.Int(logging.FieldBytes, len(doc)),
	)
	return nil
}
