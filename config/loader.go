package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
//
// Every supported env var uses the SCRIPTLINK_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).
func LoadFromEnv(cfg *Config) {
	if v := envInt("SCRIPTLINK_PORT"); v > 0 {
		cfg.Port = v
	}
	if v := envInt("SCRIPTLINK_TIMEOUT"); v > 0 {
		cfg.Timeout = secondsDuration(v)
	}
	if v := os.Getenv("SCRIPTLINK_FILE"); v != "" {
		cfg.File = v
	}
	if envBool("SCRIPTLINK_NO_PAYLOAD") {
		cfg.NoPayload = true
	}
	if v := envInt("SCRIPTLINK_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
