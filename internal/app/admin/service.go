package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/player-profile-service/internal/domain/auth"
	"github.com/preston-bernstein/player-profile-service/internal/logging"
	"github.com/preston-bernstein/player-profile-service/internal/metrics"
)

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidRegistrationCode = errors.New("invalid registration code")
	ErrAdminAlreadyRegistered  = errors.New("admin already registered")
	ErrPasswordTooLong         = errors.New("password exceeds 72 bytes")
)

// Store defines the contract for persisting the admin identity.
type Store interface {
	LoadAuth() auth.Document
	UpdateAuth(fn func(auth.Document) (auth.Document, error)) error
}

// Options configures registration.
type Options struct {
	RegistrationCode string
	// AllowReregister lets a valid registration replace an existing admin.
	AllowReregister bool
}

// Service implements the single-admin login and registration flow.
type Service struct {
	store   Store
	hasher  Hasher
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService constructs a Service. A nil hasher means bcrypt at the default cost.
func NewService(store Store, hasher Hasher, opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if hasher == nil {
		hasher = BcryptHasher{}
	}
	return &Service{
		store:   store,
		hasher:  hasher,
		opts:    opts,
		logger:  logger,
		metrics: recorder,
	}
}

// Status reports whether an admin has registered. It never exposes credentials.
func (s *Service) Status(ctx context.Context) auth.Status {
	return s.store.LoadAuth().Status()
}

// Login checks creds against the stored identity. Wrong email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, creds auth.Credentials) error {
	logger := logging.FromContext(ctx, s.logger)
	doc := s.store.LoadAuth()

	emailOK := equalConstantTime(creds.Email, doc.AdminEmail)
	passwordOK, legacy := s.checkPassword(doc, creds.Password)
	if !emailOK || !passwordOK {
		s.metrics.RecordAuthAttempt(metrics.ActionLogin, metrics.OutcomeRejected)
		logging.Warn(logger, "admin login rejected")
		return ErrInvalidCredentials
	}

	if legacy {
		s.upgradeLegacyPassword(logger, doc, creds.Password)
	}
	s.metrics.RecordAuthAttempt(metrics.ActionLogin, metrics.OutcomeSuccess)
	logging.Info(logger, "admin login succeeded")
	return nil
}

// Register replaces the admin identity when reg carries the registration code.
func (s *Service) Register(ctx context.Context, reg auth.Registration) error {
	logger := logging.FromContext(ctx, s.logger)

	if !equalConstantTime(reg.RegistrationCode, s.opts.RegistrationCode) {
		s.metrics.RecordAuthAttempt(metrics.ActionRegister, metrics.OutcomeRejected)
		logging.Warn(logger, "admin registration rejected", slog.String(logging.FieldOutcome, "bad_code"))
		return ErrInvalidRegistrationCode
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		s.metrics.RecordAuthAttempt(metrics.ActionRegister, metrics.OutcomeRejected)
		if errors.Is(err, ErrPasswordTooLong) {
			return err
		}
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.store.UpdateAuth(func(doc auth.Document) (auth.Document, error) {
		if doc.AdminExists && !s.opts.AllowReregister {
			return doc, ErrAdminAlreadyRegistered
		}
		return auth.Document{
			AdminExists:       true,
			AdminEmail:        reg.Email,
			AdminPasswordHash: hash,
		}, nil
	})
	if errors.Is(err, ErrAdminAlreadyRegistered) {
		s.metrics.RecordAuthAttempt(metrics.ActionRegister, metrics.OutcomeRejected)
		logging.Warn(logger, "admin registration rejected", slog.String(logging.FieldOutcome, "already_registered"))
		return err
	}
	if err != nil {
		s.metrics.RecordAuthAttempt(metrics.ActionRegister, metrics.OutcomeError)
		return fmt.Errorf("save admin: %w", err)
	}

	s.metrics.RecordAuthAttempt(metrics.ActionRegister, metrics.OutcomeSuccess)
	logging.Info(logger, "admin registered", slog.String(logging.FieldEmail, reg.Email))
	return nil
}

// checkPassword verifies password against the stored hash, or against a
// plaintext password left by an older deployment. legacy reports the latter.
func (s *Service) checkPassword(doc auth.Document, password string) (ok bool, legacy bool) {
	switch {
	case doc.AdminPasswordHash != "":
		return s.hasher.Compare(doc.AdminPasswordHash, password) == nil, false
	case doc.LegacyPassword != "":
		return equalConstantTime(password, doc.LegacyPassword), true
	default:
		return false, false
	}
}

// upgradeLegacyPassword swaps a plaintext password for its hash. Failure is
// logged only; the login itself already succeeded.
func (s *Service) upgradeLegacyPassword(logger *slog.Logger, seen auth.Document, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		logging.Warn(logger, "legacy password upgrade skipped", slog.Any("error", err))
		return
	}
	err = s.store.UpdateAuth(func(doc auth.Document) (auth.Document, error) {
		// Another request may have registered a new admin since the login read.
		if doc.LegacyPassword != seen.LegacyPassword || doc.AdminEmail != seen.AdminEmail {
			return doc, nil
		}
		doc.AdminPasswordHash = hash
		doc.LegacyPassword = ""
		return doc, nil
	})
	if err != nil {
		logging.Error(logger, "legacy password upgrade failed", err)
		return
	}
	logging.Info(logger, "legacy plaintext password replaced with hash")
}

func equalConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
