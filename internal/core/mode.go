// Package core composes the transport, session, and discovery layers
// into the three operations the host shell invokes: send a script to
// an explicit port, check one port for liveness, or autodiscover a
// backend across the candidate window.
//
// Architecture layers (bottom → top):
//
//	transport → session / probe / discover → core → cmd (CLI)
//
// The builder in this package is the single dispatch point from a
// Config to a runnable Mode.
package core

import "context"

// Mode represents one complete scriptlink operation. Each mode owns
// its full lifecycle from connection establishment to teardown and
// prints its own outcome report.
type Mode interface {
	Run(ctx context.Context) error
}
