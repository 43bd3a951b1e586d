package errors

import (
	"errors"
	"fmt"
	"strings"
)

// PinentryError is the base interface for all client errors.
type PinentryError interface {
	error
	IsPinentryError() bool
}

// Compile-time verification that all error types implement PinentryError.
var (
	_ PinentryError = (*StartupError)(nil)
	_ PinentryError = (*ProtocolError)(nil)
	_ PinentryError = (*PeerError)(nil)
	_ PinentryError = (*CancelledError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrSessionNotReady indicates a protocol call was made before Start succeeded.
	ErrSessionNotReady = errors.New("pinentry session not ready: call Start first")

	// ErrSessionAlreadyStarted indicates Start was called on a running session.
	ErrSessionAlreadyStarted = errors.New("pinentry session already started")

	// ErrSessionClosed indicates the session has been closed and cannot be reused.
	ErrSessionClosed = errors.New("pinentry session closed: sessions are single-use, create a new one")

	// ErrUnknownOption indicates an option name outside the supported set.
	ErrUnknownOption = errors.New("unknown pinentry option")
)

// StartupError indicates the pinentry process could not be spawned or
// greeted us with something other than a known handshake line.
type StartupError struct {
	Executable string
	Args       []string
	Greeting   string
	Stderr     string
	Err        error
}

func (e *StartupError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "start pinentry %q", e.Executable)

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	} else {
		fmt.Fprintf(&b, ": unexpected greeting %q", e.Greeting)
	}

	if e.Stderr != "" {
		fmt.Fprintf(&b, " (stderr: %s)", e.Stderr)
	}

	return b.String()
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// IsPinentryError implements PinentryError.
func (e *StartupError) IsPinentryError() bool { return true }

// ProtocolError indicates the peer violated the wire grammar or closed its
// output before a status line arrived. The session is unusable afterwards.
type ProtocolError struct {
	// Lines holds whatever was read for the failed exchange.
	Lines  []string
	Stderr string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("pinentry protocol error: %v (stderr: %s)", e.Err, e.Stderr)
	}

	return fmt.Sprintf("pinentry protocol error: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// IsPinentryError implements PinentryError.
func (e *ProtocolError) IsPinentryError() bool { return true }

// PeerError is an "ERR <code> <message>" reply to the last command.
type PeerError struct {
	Code        int
	Message     string
	LastCommand string
}

func (e *PeerError) Error() string {
	return fmt.Sprintf("call %q failed with error \"%d %s\"",
		strings.TrimSuffix(e.LastCommand, "\n"), e.Code, e.Message)
}

// IsPinentryError implements PinentryError.
func (e *PeerError) IsPinentryError() bool { return true }

// CancelledError is a PeerError raised when the user dismissed a PIN
// prompt. errors.As to *PeerError also matches it.
type CancelledError struct {
	*PeerError
}

func (e *CancelledError) Error() string {
	return "cancelled by user: " + e.PeerError.Error()
}

func (e *CancelledError) Unwrap() error {
	return e.PeerError
}

// IsPinentryError implements PinentryError.
func (e *CancelledError) IsPinentryError() bool { return true }
