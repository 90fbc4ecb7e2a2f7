// Package errors provides domain-specific error types for scriptlink.
//
// These types carry structured context (operation, address, timeout
// flag) for the internals; the session boundary flattens them into
// report strings, so nothing here ever reaches the host shell as a
// typed value.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrTimeout        = errors.New("operation timed out")
	ErrNoBackend      = errors.New("no backend found")
	ErrNoPayload      = errors.New("no payload to encode")
	ErrDeliveryFailed = errors.New("script delivery failed")
)

// ── Structured error types ───────────────────────────────────────────

// NetworkError represents a failure in a socket operation.
type NetworkError struct {
	Op      string // operation: "dial", "write", "close"
	Addr    string // network address involved
	Err     error  // underlying error
	Timeout bool   // whether the failure was a deadline expiry
}

func (e *NetworkError) Error() string {
	s := fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
	if e.Timeout {
		s += " (timeout)"
	}
	return s
}

func (e *NetworkError) Unwrap() error { return e.Err }

// EncodeError represents a payload compression failure.
type EncodeError struct {
	Stage string // "init", "compress", "flush"
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Stage, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a NetworkError, automatically detecting whether the
// underlying error is timeout-flavoured.
func Wrap(op, addr string, err error) *NetworkError {
	return &NetworkError{
		Op:      op,
		Addr:    addr,
		Err:     err,
		Timeout: classifyTimeout(err),
	}
}

// ── Classification helpers ───────────────────────────────────────────

// IsTimeout reports whether err stems from a deadline expiry rather
// than an active refusal.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Timeout
	}
	return classifyTimeout(err)
}

// classifyTimeout inspects standard library error types.
func classifyTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return nerr.Timeout()
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use scriptlink/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
