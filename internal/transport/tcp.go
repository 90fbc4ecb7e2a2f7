package transport

import (
	"context"
	"net"
)

// LoopbackDialer establishes plain TCP connections on the local
// machine. It carries no timeout of its own: the session's race timer
// cancels ctx, which aborts the dial and releases the socket.
type LoopbackDialer struct{}

// Dial connects to address over TCP.
func (d *LoopbackDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	var dialer net.Dialer
	return dialer.DialContext(ctx, network, address)
}
