package testutil

import (
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/preston-bernstein/player-profile-service/internal/domain/auth"
	"github.com/preston-bernstein/player-profile-service/internal/metrics"
	"github.com/preston-bernstein/player-profile-service/internal/store"
)

// Stores bundles document stores rooted in a test temp dir.
type Stores struct {
	Dir      string
	Profile  *store.ProfileStore
	Auth     *store.AuthStore
	Recorder *metrics.Recorder
}

// NewStores builds profile and auth stores in t.TempDir(). The auth default
// hashes auth.DefaultPassword at the minimum bcrypt cost to keep tests fast.
func NewStores(t *testing.T) Stores {
	t.Helper()
	dir := t.TempDir()
	rec := metrics.NewRecorder()
	hash := HashPassword(t, auth.DefaultPassword)
	return Stores{
		Dir:      dir,
		Profile:  store.NewProfileStore(filepath.Join(dir, "data.json"), nil, rec),
		Auth:     store.NewAuthStore(filepath.Join(dir, "auth.json"), func() auth.Document { return auth.Default(hash) }, nil, rec),
		Recorder: rec,
	}
}

// HashPassword returns a bcrypt hash at the minimum cost.
func HashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}
