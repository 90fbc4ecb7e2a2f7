package core

import (
	"context"
	"time"

	"scriptlink/internal/errors"
	"scriptlink/internal/metrics"
	"scriptlink/internal/probe"
	"scriptlink/internal/transport"
	"scriptlink/util"
)

// CheckMode reports whether a backend is accepting connections on one
// port. No data is exchanged.
type CheckMode struct {
	Dialer  transport.Dialer
	Port    int
	Timeout time.Duration
	Logger  *util.Logger
	Metrics *metrics.Collector
}

// Run probes the port and prints "true" or "false". A dead port also
// returns ErrNoBackend so the shell exits non-zero.
func (m *CheckMode) Run(ctx context.Context) error {
	p := &probe.Prober{
		Dialer:  m.Dialer,
		Timeout: m.Timeout,
		Logger:  m.Logger,
		Metrics: m.Metrics,
	}

	alive := p.CheckPort(ctx, m.Port)
	m.Logger.Report("%t", alive)
	logMetrics(m.Logger, m.Metrics)

	if !alive {
		return errors.ErrNoBackend
	}
	return nil
}
