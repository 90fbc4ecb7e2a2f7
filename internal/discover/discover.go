// Package discover locates a running backend by walking the fixed
// candidate port window in order.
package discover

import (
	"context"
	"time"

	"scriptlink/config"
	"scriptlink/internal/metrics"
	"scriptlink/internal/payload"
	"scriptlink/internal/session"
	"scriptlink/internal/transport"
	"scriptlink/util"
)

// Scanner tries each candidate port with a payload-free session until
// one succeeds. The scan is sequential: a dead port costs its full
// budget before the next candidate is attempted, so the worst case is
// len(ports) × budget with nothing listening.
type Scanner struct {
	Dialer  transport.Dialer
	Ports   []int         // candidate list; config.CandidatePorts() if nil
	Timeout time.Duration // per-port budget; DefaultSendTimeout if 0
	Logger  *util.Logger
	Metrics *metrics.Collector
}

// Scan returns the first responsive port. ok is false when every
// candidate failed. Per-port failures are logged and swallowed — only
// exhaustion of the whole list is terminal.
func (s *Scanner) Scan(ctx context.Context) (port int, ok bool) {
	ports := s.Ports
	if len(ports) == 0 {
		ports = config.CandidatePorts()
	}

	s.Logger.Verbose("scanning %d candidate port(s)", len(ports))

	for _, p := range ports {
		sess := session.New(s.Dialer, p, s.Timeout, s.Logger, s.Metrics)
		res := sess.Run(ctx, payload.None())
		if res.OK() {
			s.Logger.Verbose("backend answering on port %d", p)
			s.Metrics.BackendFound()
			return p, true
		}
		s.Logger.Verbose("port %d: %v", p, res.Err)

		if ctx.Err() != nil {
			// Host is shutting down; stop walking.
			break
		}
	}
	return 0, false
}
