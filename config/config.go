// Package config defines the runtime configuration for scriptlink and
// the fixed protocol constants (candidate ports, timeout budgets).
package config

import (
	"fmt"
	"time"

	"scriptlink/util"
)

// Config holds every tuneable for a single scriptlink invocation.
type Config struct {
	// ── Target ───────────────────────────────────────────────────────
	Port    int           // backend port for send / check
	Timeout time.Duration // per-attempt budget override (0 = mode default)

	// ── Mode ─────────────────────────────────────────────────────────
	Check    bool // -z: liveness probe only, no data
	Discover bool // -D: walk the candidate ports for a backend

	// ── Payload ──────────────────────────────────────────────────────
	File      string // -f: read the script from a file
	NoPayload bool   // -n: connect and close without sending
	Script    []byte // resolved script bytes (filled in by cmd)
	HasScript bool   // true once Script has been resolved

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Check && c.Discover {
		return &ConfigError{
			Field:   "check",
			Message: "check and discover modes are mutually exclusive",
		}
	}

	if c.Check || c.Discover {
		if c.File != "" || c.HasScript {
			return &ConfigError{
				Field:   "file",
				Message: "probe modes do not take a payload",
				Hint:    "drop -f, or run a plain send instead",
			}
		}
	}

	if c.NoPayload && c.File != "" {
		return &ConfigError{
			Field:   "no-payload",
			Message: "-n and -f are mutually exclusive",
		}
	}

	if !c.Discover {
		if err := util.ValidatePort(c.Port); err != nil {
			return &ConfigError{Field: "port", Value: c.Port, Message: err.Error()}
		}
	}

	if c.Timeout < 0 {
		return &ConfigError{Field: "timeout", Value: c.Timeout, Message: "must be positive"}
	}

	return nil
}

// SendTimeout returns the effective budget for connect-and-send attempts.
func (c *Config) SendTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultSendTimeout
}

// ProbeTimeout returns the effective budget for pure liveness checks.
func (c *Config) ProbeTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultProbeTimeout
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}
