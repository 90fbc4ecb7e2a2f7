// Package transport provides connection establishment for the
// delivery core. The production dialer speaks plain TCP to the
// loopback interface; tests substitute fakes to simulate hangs and
// refusals without real sockets.
package transport

import (
	"context"
	"net"
)

// Dialer opens outbound network connections.
type Dialer interface {
	// Dial establishes a connection to the given network address.
	// The attempt is bounded solely by ctx; implementations must not
	// arm a second timer of their own.
	Dial(ctx context.Context, network, address string) (net.Conn, error)
}
