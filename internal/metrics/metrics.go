// Package metrics provides lightweight counters for tracking what a
// scriptlink invocation did on the wire.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime statistics for one invocation.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	attemptsTotal   atomic.Int64
	attemptsFailed  atomic.Int64
	bytesRaw        atomic.Int64
	bytesCompressed atomic.Int64
	probesTotal     atomic.Int64
	backendsFound   atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Connection metrics ───────────────────────────────────────────────

// ConnectAttempt records the start of one socket session.
func (c *Collector) ConnectAttempt() {
	if c == nil {
		return
	}
	c.attemptsTotal.Add(1)
}

// ConnectFailed records a session that ended in the Failed state.
func (c *Collector) ConnectFailed() {
	if c == nil {
		return
	}
	c.attemptsFailed.Add(1)
}

// Attempts returns the total number of socket sessions started.
func (c *Collector) Attempts() int64 {
	if c == nil {
		return 0
	}
	return c.attemptsTotal.Load()
}

// Failures returns how many sessions ended in Failed.
func (c *Collector) Failures() int64 {
	if c == nil {
		return 0
	}
	return c.attemptsFailed.Load()
}

// ── Payload metrics ──────────────────────────────────────────────────

// PayloadSent records one delivered script: raw length and the
// compressed byte count that actually crossed the wire.
func (c *Collector) PayloadSent(raw, compressed int64) {
	if c == nil {
		return
	}
	c.bytesRaw.Add(raw)
	c.bytesCompressed.Add(compressed)
}

// BytesOnWire returns total compressed bytes written.
func (c *Collector) BytesOnWire() int64 {
	if c == nil {
		return 0
	}
	return c.bytesCompressed.Load()
}

// BytesRaw returns total uncompressed script bytes handed in.
func (c *Collector) BytesRaw() int64 {
	if c == nil {
		return 0
	}
	return c.bytesRaw.Load()
}

// ── Discovery metrics ────────────────────────────────────────────────

// ProbeRun records one liveness probe.
func (c *Collector) ProbeRun() {
	if c == nil {
		return
	}
	c.probesTotal.Add(1)
}

// Probes returns the number of liveness probes run.
func (c *Collector) Probes() int64 {
	if c == nil {
		return 0
	}
	return c.probesTotal.Load()
}

// BackendFound records a successful autodiscovery.
func (c *Collector) BackendFound() {
	if c == nil {
		return
	}
	c.backendsFound.Add(1)
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError stores the most recent failure message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// LastError returns the most recent failure message, if any.
func (c *Collector) LastError() string {
	if c == nil {
		return ""
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErrorMsg
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Attempts        int64  `json:"attempts"`
	Failures        int64  `json:"failures"`
	BytesRaw        int64  `json:"bytes_raw"`
	BytesCompressed int64  `json:"bytes_compressed"`
	Probes          int64  `json:"probes"`
	BackendsFound   int64  `json:"backends_found"`
	UptimeMillis    int64  `json:"uptime_ms"`
	LastError       string `json:"last_error,omitempty"`
}

// Snapshot captures the current counter values.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	start := c.startTime
	lastMsg := c.lastErrorMsg
	c.mu.RUnlock()

	return Snapshot{
		Attempts:        c.attemptsTotal.Load(),
		Failures:        c.attemptsFailed.Load(),
		BytesRaw:        c.bytesRaw.Load(),
		BytesCompressed: c.bytesCompressed.Load(),
		Probes:          c.probesTotal.Load(),
		BackendsFound:   c.backendsFound.Load(),
		UptimeMillis:    time.Since(start).Milliseconds(),
		LastError:       lastMsg,
	}
}

// String renders the snapshot as compact JSON for debug logging.
func (s Snapshot) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}
