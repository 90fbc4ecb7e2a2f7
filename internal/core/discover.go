package core

import (
	"context"
	"time"

	"scriptlink/internal/discover"
	"scriptlink/internal/errors"
	"scriptlink/internal/metrics"
	"scriptlink/internal/transport"
	"scriptlink/util"
)

// DiscoverMode walks the candidate port window and reports the first
// port with a backend listening.
type DiscoverMode struct {
	Dialer  transport.Dialer
	Ports   []int // override for tests; candidate list if nil
	Timeout time.Duration
	Logger  *util.Logger
	Metrics *metrics.Collector
}

// Run scans the candidates in order and prints the discovered port,
// or a not-found report plus ErrNoBackend after exhausting the list.
func (m *DiscoverMode) Run(ctx context.Context) error {
	sc := &discover.Scanner{
		Dialer:  m.Dialer,
		Ports:   m.Ports,
		Timeout: m.Timeout,
		Logger:  m.Logger,
		Metrics: m.Metrics,
	}

	port, ok := sc.Scan(ctx)
	logMetrics(m.Logger, m.Metrics)

	if !ok {
		m.Logger.Report("no backend found")
		return errors.ErrNoBackend
	}
	m.Logger.Report("%d", port)
	return nil
}
