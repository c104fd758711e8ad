package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/preston-bernstein/player-profile-service/internal/logging"
	"github.com/preston-bernstein/player-profile-service/internal/metrics"
)

// JSONFile owns one JSON document on disk. Every access goes through its
// mutex, so reads never observe a half-written file and Update is a real
// read-modify-write.
type JSONFile[T any] struct {
	mu       sync.Mutex
	name     string
	path     string
	defaults func() T
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewJSONFile constructs a handle for the document at path. name labels logs
// and metrics; defaults supplies the document used when the file is absent or unreadable.
func NewJSONFile[T any](name, path string, defaults func() T, logger *slog.Logger, recorder *metrics.Recorder) *JSONFile[T] {
	return &JSONFile[T]{
		name:     name,
		path:     path,
		defaults: defaults,
		logger:   logger,
		metrics:  recorder,
	}
}

// Name is the document label.
func (f *JSONFile[T]) Name() string { return f.name }

// Path is the document file path.
func (f *JSONFile[T]) Path() string { return f.path }

// Load returns the stored document, or the default when the file cannot be
// read or decoded. The failure is logged and counted, never returned.
func (f *JSONFile[T]) Load() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadLocked()
}

// Check reads and decodes the file without falling back.
func (f *JSONFile[T]) Check() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.read()
	return err
}

// Save replaces the whole document.
func (f *JSONFile[T]) Save(doc T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saveLocked(doc)
}

// Update loads the document, applies fn and saves the result while holding the
// lock. An error from fn aborts without writing.
func (f *JSONFile[T]) Update(fn func(T) (T, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next, err := fn(f.loadLocked())
	if err != nil {
		return err
	}
	return f.saveLocked(next)
}

// EnsureExists writes the default document when the file is absent and reports
// whether it did. An existing file is left untouched, even if corrupt.
func (f *JSONFile[T]) EnsureExists() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := os.Stat(f.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", f.path, err)
	}
	if err := f.saveLocked(f.defaults()); err != nil {
		return false, err
	}
	return true, nil
}

func (f *JSONFile[T]) loadLocked() T {
	doc, err := f.read()
	if err != nil {
		logging.Warn(f.logger, "document unreadable, serving default",
			slog.String(logging.FieldDocument, f.name),
			slog.String(logging.FieldFile, f.path),
			slog.Any("error", err),
		)
		f.metrics.RecordDocumentRead(f.name, true)
		return f.defaults()
	}
	f.metrics.RecordDocumentRead(f.name, false)
	return doc
}

func (f *JSONFile[T]) read() (T, error) {
	var doc T
	data, err := os.ReadFile(f.path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return doc, nil
}

func (f *JSONFile[T]) saveLocked(doc T) error {
	start := time.Now()
	err := f.write(doc)
	f.metrics.RecordDocumentWrite(f.name, time.Since(start), err)
	if err != nil {
		logging.Error(f.logger, "document write failed", err,
			slog.String(logging.FieldDocument, f.name),
			slog.String(logging.FieldFile, f.path),
		)
		return err
	}
	return nil
}

func (f *JSONFile[T]) write(doc T) error {
	data, err := encode(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.name, err)
	}
	if existing, err := os.ReadFile(f.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", f.path, err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// encode pretty-prints with two-space indentation. HTML escaping is off so
// stored text matches what the client sent.
func encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
