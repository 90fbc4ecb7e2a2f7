package core

import (
	"context"
	"time"

	"scriptlink/internal/errors"
	"scriptlink/internal/metrics"
	"scriptlink/internal/payload"
	"scriptlink/internal/session"
	"scriptlink/internal/transport"
	"scriptlink/util"
)

// SendMode compresses a script and delivers it to an explicit port.
// With an absent payload it degrades to a connect-and-close exchange.
type SendMode struct {
	Dialer  transport.Dialer
	Port    int
	Payload payload.Payload
	Timeout time.Duration
	Logger  *util.Logger
	Metrics *metrics.Collector
}

// Run performs one delivery and prints the session's report. The
// report itself never raises; the returned error only signals the
// process exit code.
func (m *SendMode) Run(ctx context.Context) error {
	sess := session.New(m.Dialer, m.Port, m.Timeout, m.Logger, m.Metrics)
	res := sess.Run(ctx, m.Payload)

	m.Logger.Report("%s", res)
	logMetrics(m.Logger, m.Metrics)

	if !res.OK() {
		return errors.ErrDeliveryFailed
	}
	return nil
}
