package admin

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/preston-bernstein/player-profile-service/internal/domain/auth"
	"github.com/preston-bernstein/player-profile-service/internal/metrics"
	"github.com/preston-bernstein/player-profile-service/internal/testutil"
)

const code = "BASEBALL2025"

func newService(t *testing.T, allowReregister bool) (*Service, testutil.Stores) {
	t.Helper()
	stores := testutil.NewStores(t)
	svc := NewService(stores.Auth, BcryptHasher{Cost: bcrypt.MinCost}, Options{
		RegistrationCode: code,
		AllowReregister:  allowReregister,
	}, nil, stores.Recorder)
	return svc, stores
}

func TestRegisterThenLogin(t *testing.T) {
	svc, stores := newService(t, true)
	ctx := context.Background()

	require.False(t, svc.Status(ctx).AdminExists)
	require.NoError(t, svc.Register(ctx, auth.Registration{Email: "a@b.com", Password: "x", RegistrationCode: code}))
	require.True(t, svc.Status(ctx).AdminExists)

	require.NoError(t, svc.Login(ctx, auth.Credentials{Email: "a@b.com", Password: "x"}))
	require.ErrorIs(t, svc.Login(ctx, auth.Credentials{Email: "a@b.com", Password: "y"}), ErrInvalidCredentials)
	require.ErrorIs(t, svc.Login(ctx, auth.Credentials{Email: "z@b.com", Password: "x"}), ErrInvalidCredentials)

	stored := stores.Auth.LoadAuth()
	require.NotEqual(t, "x", stored.AdminPasswordHash)
	require.Empty(t, stored.LegacyPassword)
	require.Equal(t, 1, stores.Recorder.AuthAttempts(metrics.ActionLogin, metrics.OutcomeSuccess))
	require.Equal(t, 2, stores.Recorder.AuthAttempts(metrics.ActionLogin, metrics.OutcomeRejected))
}

func TestDefaultCredentialsLogIn(t *testing.T) {
	svc, _ := newService(t, true)

	err := svc.Login(context.Background(), auth.Credentials{Email: auth.DefaultEmail, Password: auth.DefaultPassword})

	require.NoError(t, err)
}

func TestRegisterRejectsWrongCodeWithoutWriting(t *testing.T) {
	svc, stores := newService(t, true)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, auth.Registration{Email: "a@b.com", Password: "x", RegistrationCode: code}))
	before, err := os.ReadFile(stores.Auth.File().Path())
	require.NoError(t, err)

	for _, bad := range []string{"", "baseball2025", "BASEBALL2026", code + " "} {
		err := svc.Register(ctx, auth.Registration{Email: "evil@b.com", Password: "p", RegistrationCode: bad})
		require.ErrorIs(t, err, ErrInvalidRegistrationCode)
	}

	after, err := os.ReadFile(stores.Auth.File().Path())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestReregistrationPolicy(t *testing.T) {
	ctx := context.Background()

	allowing, _ := newService(t, true)
	require.NoError(t, allowing.Register(ctx, auth.Registration{Email: "a@b.com", Password: "x", RegistrationCode: code}))
	require.NoError(t, allowing.Register(ctx, auth.Registration{Email: "c@d.com", Password: "y", RegistrationCode: code}))
	require.NoError(t, allowing.Login(ctx, auth.Credentials{Email: "c@d.com", Password: "y"}))
	require.ErrorIs(t, allowing.Login(ctx, auth.Credentials{Email: "a@b.com", Password: "x"}), ErrInvalidCredentials)

	strict, _ := newService(t, false)
	require.NoError(t, strict.Register(ctx, auth.Registration{Email: "a@b.com", Password: "x", RegistrationCode: code}))
	err := strict.Register(ctx, auth.Registration{Email: "c@d.com", Password: "y", RegistrationCode: code})
	require.ErrorIs(t, err, ErrAdminAlreadyRegistered)
	require.NoError(t, strict.Login(ctx, auth.Credentials{Email: "a@b.com", Password: "x"}))
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	svc, _ := newService(t, true)

	err := svc.Register(context.Background(), auth.Registration{
		Email:            "a@b.com",
		Password:         strings.Repeat("p", maxPasswordBytes+1),
		RegistrationCode: code,
	})

	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestLegacyPlaintextIsUpgradedOnLogin(t *testing.T) {
	svc, stores := newService(t, true)
	ctx := context.Background()
	require.NoError(t, stores.Auth.SaveAuth(auth.Document{
		AdminExists:    true,
		AdminEmail:     "old@b.com",
		LegacyPassword: "secret",
	}))

	require.ErrorIs(t, svc.Login(ctx, auth.Credentials{Email: "old@b.com", Password: "wrong"}), ErrInvalidCredentials)
	require.Equal(t, "secret", stores.Auth.LoadAuth().LegacyPassword, "failed login must not migrate")

	require.NoError(t, svc.Login(ctx, auth.Credentials{Email: "old@b.com", Password: "secret"}))

	stored := stores.Auth.LoadAuth()
	require.Empty(t, stored.LegacyPassword)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.AdminPasswordHash), []byte("secret")))
	require.NoError(t, svc.Login(ctx, auth.Credentials{Email: "old@b.com", Password: "secret"}))
}

type failingStore struct {
	doc auth.Document
	err error
}

func (f *failingStore) LoadAuth() auth.Document { return f.doc }

func (f *failingStore) UpdateAuth(fn func(auth.Document) (auth.Document, error)) error {
	if _, err := fn(f.doc); err != nil {
		return err
	}
	return f.err
}

func TestRegisterWrapsStorageFailure(t *testing.T) {
	boom := errors.New("read-only filesystem")
	rec := metrics.NewRecorder()
	svc := NewService(&failingStore{err: boom}, BcryptHasher{Cost: bcrypt.MinCost}, Options{RegistrationCode: code}, nil, rec)

	err := svc.Register(context.Background(), auth.Registration{Email: "a@b.com", Password: "x", RegistrationCode: code})

	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, rec.AuthAttempts(metrics.ActionRegister, metrics.OutcomeError))
}

func TestLoginWithNoStoredPasswordFails(t *testing.T) {
	svc := NewService(&failingStore{doc: auth.Document{AdminEmail: "a@b.com"}}, nil, Options{RegistrationCode: code}, nil, nil)

	err := svc.Login(context.Background(), auth.Credentials{Email: "a@b.com", Password: ""})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLogsNeverCarryPasswords(t *testing.T) {
	stores := testutil.NewStores(t)
	logger, buf := testutil.NewJSONBufferLogger()
	svc := NewService(stores.Auth, BcryptHasher{Cost: bcrypt.MinCost}, Options{
		RegistrationCode: code,
		AllowReregister:  true,
	}, logger, stores.Recorder)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, auth.Registration{Email: "a@b.com", Password: "s3cret-pass", RegistrationCode: code}))
	require.NoError(t, svc.Login(ctx, auth.Credentials{Email: "a@b.com", Password: "s3cret-pass"}))
	require.Error(t, svc.Login(ctx, auth.Credentials{Email: "a@b.com", Password: "wrong-pass"}))

	lines := 0
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines++
		for key, value := range entry {
			text, _ := value.(string)
			require.NotContains(t, text, "s3cret-pass", key)
			require.NotContains(t, text, "wrong-pass", key)
		}
	}
	require.Equal(t, 3, lines)
}
