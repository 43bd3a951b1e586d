package config

import (
	"log/slog"
	"time"
)

// DefaultExecutable is resolved through $PATH when no executable is set.
const DefaultExecutable = "pinentry"

// Options configures a pinentry session.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Executable is the pinentry program name or path.
	// Defaults to DefaultExecutable searched in PATH.
	Executable string

	// Timeout is passed to the peer as --timeout in whole seconds.
	// Zero or negative disables the flag; the peer owns the wait policy.
	Timeout time.Duration

	// Display is passed to the peer as --display.
	Display string

	// NoGlobalGrab passes --no-global-grab so the prompt does not grab the keyboard.
	NoGlobalGrab bool

	// TTYName overrides the detected controlling terminal.
	TTYName string

	// Locale overrides the LC_CTYPE value derived from the environment.
	Locale string

	// SkipAutoOptions disables sending ttyname and lc-ctype after the handshake.
	SkipAutoOptions bool

	// Env provides additional environment variables for the pinentry process.
	Env map[string]string

	// Stderr is called with every line the peer writes to stderr.
	Stderr func(string)

	// Transport replaces the subprocess transport. Used for testing.
	Transport Transport
}
