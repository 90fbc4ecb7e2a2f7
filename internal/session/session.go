// Package session owns the lifecycle of one outbound delivery
// connection: connect with a bounded budget, optionally write a
// compressed script, and close.
//
// A session resolves exactly once, to Sent or Failed, and never
// returns a Go error to its caller: callers that sequence attempts
// (autodiscovery) continue past individual failures by inspecting the
// Result. Sessions are single-shot — create a new one per attempt.
package session

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"scriptlink/config"
	"scriptlink/internal/errors"
	"scriptlink/internal/metrics"
	"scriptlink/internal/payload"
	"scriptlink/internal/race"
	"scriptlink/internal/transport"
	"scriptlink/util"
)

// State identifies a point in the session lifecycle.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateSending
	StateSent
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateSending:
		return "sending"
	case StateSent:
		return "sent"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the terminal outcome of one session. It is a one-shot
// value: built when the session resolves, never pooled or reused.
type Result struct {
	Port      int
	State     State // StateSent or StateFailed
	BytesSent int   // compressed bytes written
	RawLen    int   // uncompressed script length
	Err       error // non-nil iff State == StateFailed
}

// OK reports whether the session reached Sent.
func (r Result) OK() bool { return r.State == StateSent }

// String renders the human-readable report shown to the user.
func (r Result) String() string {
	addr := util.FormatAddr(config.LoopbackHost, r.Port)
	if !r.OK() {
		return fmt.Sprintf("delivery to %s failed: %v", addr, r.Err)
	}
	if r.BytesSent == 0 {
		return fmt.Sprintf("connected to %s, no script sent", addr)
	}
	return fmt.Sprintf("sent %d compressed bytes (%d raw) to %s",
		r.BytesSent, r.RawLen, addr)
}

// Session performs a single connect-and-deliver exchange against
// 127.0.0.1:<Port>.
type Session struct {
	Dialer  transport.Dialer
	Port    int
	Timeout time.Duration // whole-attempt budget; DefaultSendTimeout if 0
	Logger  *util.Logger
	Metrics *metrics.Collector

	// state is atomic: an abandoned attempt's goroutine may still be
	// transitioning when the timed-out caller marks the session Failed.
	state atomic.Int32
}

// New returns a session ready to run once.
func New(dialer transport.Dialer, port int, timeout time.Duration, logger *util.Logger, mc *metrics.Collector) *Session {
	return &Session{
		Dialer:  dialer,
		Port:    port,
		Timeout: timeout,
		Logger:  logger,
		Metrics: mc,
	}
}

// Run drives the session to a terminal state and returns its Result.
// Every wait inside is bounded by the budget, so Run always returns.
func (s *Session) Run(ctx context.Context, p payload.Payload) Result {
	budget := s.Timeout
	if budget <= 0 {
		budget = config.DefaultSendTimeout
	}
	addr := util.FormatAddr(config.LoopbackHost, s.Port)

	s.Metrics.ConnectAttempt()

	res, err := race.Run(ctx, budget, "deliver to "+addr,
		func(ctx context.Context) (Result, error) {
			return s.attempt(ctx, addr, p)
		})
	if err != nil {
		return s.fail(err)
	}
	return res
}

// attempt runs the Connecting → Sent path. It executes under the race
// timer; ctx cancellation forces the socket closed mid-flight.
func (s *Session) attempt(ctx context.Context, addr string, p payload.Payload) (Result, error) {
	s.transition(StateConnecting)

	conn, err := s.Dialer.Dial(ctx, "tcp", addr)
	if err != nil {
		return Result{}, errors.Wrap("dial", addr, err)
	}

	// Abandonment teardown: if the budget expires mid-write the
	// socket is destroyed, not drained.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	s.transition(StateConnected)

	if !p.Present() {
		if err := conn.Close(); err != nil {
			return Result{}, errors.Wrap("close", addr, err)
		}
		s.transition(StateSent)
		s.Logger.Verbose("connected to %s, nothing to send", addr)
		return Result{Port: s.Port, State: StateSent}, nil
	}

	encoded, err := payload.Encode(p)
	if err != nil {
		conn.Close()
		return Result{}, err
	}

	s.transition(StateSending)
	n, err := conn.Write(encoded)
	if err != nil {
		conn.Close()
		return Result{}, errors.Wrap("write", addr, err)
	}

	// Graceful close flushes the remaining kernel buffer before FIN.
	if err := conn.Close(); err != nil {
		return Result{}, errors.Wrap("close", addr, err)
	}

	s.transition(StateSent)
	s.Metrics.PayloadSent(int64(p.Len()), int64(n))
	s.Logger.Verbose("sent %d bytes to %s", n, addr)
	return Result{Port: s.Port, State: StateSent, BytesSent: n, RawLen: p.Len()}, nil
}

// fail resolves the session in the Failed state. The error is folded
// into the Result rather than returned, per the package contract.
func (s *Session) fail(err error) Result {
	s.transition(StateFailed)
	s.Metrics.ConnectFailed()
	s.Metrics.RecordError(err.Error())
	s.Logger.Verbose("session to port %d failed: %v", s.Port, err)
	return Result{Port: s.Port, State: StateFailed, Err: err}
}

func (s *Session) transition(next State) {
	prev := State(s.state.Swap(int32(next)))
	s.Logger.Debug("session port %d: %s -> %s", s.Port, prev, next)
}
