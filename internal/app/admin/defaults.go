package admin

import (
	"log/slog"
	"sync"

	"github.com/preston-bernstein/player-profile-service/internal/domain/auth"
	"github.com/preston-bernstein/player-profile-service/internal/logging"
)

// DefaultIdentity returns the factory for the placeholder admin document. The
// default password is hashed on first use and the hash reused afterwards, so
// a server whose auth file already exists never pays for it.
func DefaultIdentity(hasher Hasher, logger *slog.Logger) func() auth.Document {
	if hasher == nil {
		hasher = BcryptHasher{}
	}
	var (
		once sync.Once
		hash string
	)
	return func() auth.Document {
		once.Do(func() {
			h, err := hasher.Hash(auth.DefaultPassword)
			if err != nil {
				// With no hash stored, the default credentials cannot log in.
				logging.Error(logger, "failed to hash default admin password", err)
				return
			}
			hash = h
		})
		return auth.Default(hash)
	}
}
