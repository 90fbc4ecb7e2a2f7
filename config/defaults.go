package config

import "time"

// ── Protocol constants ───────────────────────────────────────────────
//
// The wire contract with the backend is fixed: loopback only, a known
// port window, and two timeout budgets. Everything here is normative —
// changing a value changes which backends this tool can find.

// candidatePorts is the fixed search space for autodiscovery, in probe
// order. The backend binds the first free one at startup, so the
// lowest responsive port wins ties.
var candidatePorts = [...]int{8392, 8393, 8394, 8395, 8396, 8397}

// CandidatePorts returns a fresh copy of the candidate list so callers
// cannot reorder the shared table.
func CandidatePorts() []int {
	out := make([]int, len(candidatePorts))
	copy(out, candidatePorts[:])
	return out
}

const (
	// LoopbackHost is the only host this tool ever contacts.
	LoopbackHost = "127.0.0.1"

	// DefaultPort is the first candidate port, used when no explicit
	// port is given.
	DefaultPort = 8392

	// DefaultSendTimeout bounds a connect-and-optionally-send attempt.
	DefaultSendTimeout = 3 * time.Second

	// DefaultProbeTimeout bounds a pure liveness check.
	DefaultProbeTimeout = 1 * time.Second
)
