// Package probe answers a single question: is anything accepting TCP
// connections on a local port right now.
package probe

import (
	"context"
	"net"
	"time"

	"scriptlink/config"
	"scriptlink/internal/metrics"
	"scriptlink/internal/race"
	"scriptlink/internal/transport"
	"scriptlink/util"
)

// Prober runs liveness checks against loopback ports. Unlike a
// session it never writes and never distinguishes error causes: the
// answer is a bare boolean.
type Prober struct {
	Dialer  transport.Dialer
	Timeout time.Duration // per-check budget; DefaultProbeTimeout if 0
	Logger  *util.Logger
	Metrics *metrics.Collector
}

// CheckPort dials 127.0.0.1:<port> and reports whether the connection
// succeeded. The connection is closed the instant it opens; the peer
// observes a bare connect/disconnect with no payload.
func (p *Prober) CheckPort(ctx context.Context, port int) bool {
	budget := p.Timeout
	if budget <= 0 {
		budget = config.DefaultProbeTimeout
	}
	addr := util.FormatAddr(config.LoopbackHost, port)

	p.Metrics.ProbeRun()

	conn, err := race.Run(ctx, budget, "probe "+addr,
		func(ctx context.Context) (net.Conn, error) {
			return p.Dialer.Dial(ctx, "tcp", addr)
		})
	if err != nil {
		p.Logger.Debug("probe %s: %v", addr, err)
		return false
	}
	conn.Close()
	p.Logger.Debug("probe %s: accepting", addr)
	return true
}
