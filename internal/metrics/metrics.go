package metrics

import (
	"sync"
	"time"
)

type documentStats struct {
	reads            int
	fallbacks        int
	writes           int
	writeErrors      int
	lastWriteLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about document access and
// auth attempts, and forwards them to OTel instruments when configured.
type Recorder struct {
	mu   sync.Mutex
	docs map[string]*documentStats
	auth map[string]int
	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		docs: make(map[string]*documentStats),
		auth: make(map[string]int),
		otel: otel,
	}
}

// RecordDocumentRead counts a load of the named document. fallback is true when
// the stored file could not be used and the built-in default was served instead.
func (r *Recorder) RecordDocumentRead(document string, fallback bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(document)
	stats.reads++
	if fallback {
		stats.fallbacks++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordDocumentRead(document, fallback)
	}
}

// RecordDocumentWrite counts a save of the named document and stores its latency.
func (r *Recorder) RecordDocumentWrite(document string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(document)
	stats.writes++
	stats.lastWriteLatency = duration
	if err != nil {
		stats.writeErrors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordDocumentWrite(document, duration, err)
	}
}

// RecordAuthAttempt counts a login or registration attempt by outcome.
func (r *Recorder) RecordAuthAttempt(action, outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.auth[action+":"+outcome]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordAuthAttempt(action, outcome)
	}
}

// AuthAttempts returns how many attempts of action ended with outcome.
func (r *Recorder) AuthAttempts(action, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.auth[action+":"+outcome]
}

// Snapshot returns a copy of the current stats for a document.
type Snapshot struct {
	Reads            int
	Fallbacks        int
	Writes           int
	WriteErrors      int
	LastWriteLatency time.Duration
}

func (r *Recorder) Snapshot(document string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.docs[document]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Reads:            stats.reads,
		Fallbacks:        stats.fallbacks,
		Writes:           stats.writes,
		WriteErrors:      stats.writeErrors,
		LastWriteLatency: stats.lastWriteLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(document string) *documentStats {
	stats, ok := r.docs[document]
	if !ok {
		stats = &documentStats{}
		r.docs[document] = stats
	}
	return stats
}
