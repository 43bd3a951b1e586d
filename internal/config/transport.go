// Package config provides configuration types for the pinentry client.
package config

import "context"

// Transport defines the line channel to a pinentry peer.
// Implement this to provide custom transports for testing or mocking.
//
// The default implementation is subprocess.Session which spawns the
// pinentry executable.
type Transport interface {
	// Start spawns the peer and performs the readiness handshake.
	Start(ctx context.Context) error

	// Send writes one command line. The newline is appended by the transport.
	Send(ctx context.Context, line string) error

	// Receive reads response lines up to and including the status line.
	Receive(ctx context.Context) ([]string, error)

	// TTYName returns the controlling terminal captured at Start, or "".
	TTYName() string

	// Close terminates the peer. It's safe to call Close multiple times.
	Close() error
}
