package store

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nightlyone/lockfile"
	"github.com/stretchr/testify/require"
)

func TestDirLockAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".profile.lock")

	lock, err := AcquireDirLock(path)
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(lock.Path()))

	data, err := os.ReadFile(lock.Path())
	require.NoError(t, err)
	require.Contains(t, string(data), strconv.Itoa(os.Getpid()))

	require.NoError(t, lock.Release())
	_, err = os.Stat(lock.Path())
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDirLockBusyWhenHeldByLiveProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".profile.lock")
	// The test runner's parent is alive for the duration of the test.
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getppid())+"\n"), 0o644))

	_, err := AcquireDirLock(path)

	require.ErrorIs(t, err, lockfile.ErrBusy)
}

func TestNilDirLockIsSafe(t *testing.T) {
	var lock *DirLock
	require.NoError(t, lock.Release())
	require.Equal(t, "", lock.Path())
}
