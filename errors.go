package pinentry

import "github.com/wagiedev/pinentry-go/internal/errors"

// Re-export error types from internal package

// StartupError indicates pinentry could not be started or sent an unknown greeting.
type StartupError = errors.StartupError

// ProtocolError indicates pinentry broke the wire grammar or hung up mid-response.
type ProtocolError = errors.ProtocolError

// PeerError is an "ERR <code> <message>" reply from pinentry.
type PeerError = errors.PeerError

// CancelledError indicates the user dismissed a PIN prompt.
type CancelledError = errors.CancelledError

// PinentryError is the base interface for all client errors.
type PinentryError = errors.PinentryError

// Re-export sentinel errors from internal package.
var (
	// ErrSessionNotReady indicates a protocol call was made before Start.
	ErrSessionNotReady = errors.ErrSessionNotReady

	// ErrSessionAlreadyStarted indicates Start was called twice.
	ErrSessionAlreadyStarted = errors.ErrSessionAlreadyStarted

	// ErrSessionClosed indicates the client has been closed and cannot be reused.
	ErrSessionClosed = errors.ErrSessionClosed

	// ErrUnknownOption indicates an option name outside the supported set.
	ErrUnknownOption = errors.ErrUnknownOption
)
