package pinentry

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStartupError_Creation tests StartupError creation and formatting.
func TestStartupError_Creation(t *testing.T) {
	err := &StartupError{
		Executable: "/usr/bin/pinentry-curses",
		Greeting:   "Hello",
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "/usr/bin/pinentry-curses")
	require.Contains(t, err.Error(), "unexpected greeting")
}

// TestProtocolError_Unwrap tests that ProtocolError exposes its cause.
func TestProtocolError_Unwrap(t *testing.T) {
	err := &ProtocolError{Err: io.ErrUnexpectedEOF, Stderr: "segfault"}

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Contains(t, err.Error(), "segfault")
}

// TestCancelledError_MatchesPeerError tests the cancellation narrowing.
func TestCancelledError_MatchesPeerError(t *testing.T) {
	var err error = &CancelledError{PeerError: &PeerError{
		Code:        83886179,
		Message:     "Operation cancelled",
		LastCommand: "GETPIN",
	}}

	_, ok := errors.AsType[*PeerError](err)
	require.True(t, ok)

	_, ok = errors.AsType[*CancelledError](err)
	require.True(t, ok)
}

// TestErrorTypes_ImplementPinentryError tests the marker interface.
func TestErrorTypes_ImplementPinentryError(t *testing.T) {
	for _, err := range []error{
		&StartupError{},
		&ProtocolError{},
		&PeerError{},
		&CancelledError{PeerError: &PeerError{}},
	} {
		sdkErr, ok := err.(PinentryError)
		require.True(t, ok, "%T", err)
		require.True(t, sdkErr.IsPinentryError())
	}
}

// TestSentinelErrors tests that sentinels are distinct.
func TestSentinelErrors(t *testing.T) {
	require.NotErrorIs(t, ErrSessionNotReady, ErrSessionClosed)
	require.NotErrorIs(t, ErrSessionClosed, ErrSessionAlreadyStarted)
	require.NotErrorIs(t, ErrUnknownOption, ErrSessionNotReady)
}
