package pinentry

import (
	"log/slog"
	"time"
)

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithExecutable sets the pinentry program name or path.
// A bare name is searched in PATH; the default is "pinentry".
func WithExecutable(executable string) Option {
	return func(o *Options) {
		o.Executable = executable
	}
}

// WithEnv provides additional environment variables for the pinentry process.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// ===== Prompt Behaviour =====

// WithTimeout makes pinentry give up after d, rounded up to whole seconds.
// The timeout is enforced by pinentry itself.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithDisplay selects the X display pinentry draws on.
func WithDisplay(display string) Option {
	return func(o *Options) {
		o.Display = display
	}
}

// WithGlobalGrab controls whether pinentry grabs the keyboard while the
// dialog is open. Enabled by default.
func WithGlobalGrab(enabled bool) Option {
	return func(o *Options) {
		o.NoGlobalGrab = !enabled
	}
}

// ===== Environment =====

// WithTTYName overrides the detected controlling terminal.
func WithTTYName(tty string) Option {
	return func(o *Options) {
		o.TTYName = tty
	}
}

// WithLocale overrides the LC_CTYPE value derived from the environment.
func WithLocale(locale string) Option {
	return func(o *Options) {
		o.Locale = locale
	}
}

// WithoutAutoOptions stops Start from sending the terminal and locale options.
func WithoutAutoOptions() Option {
	return func(o *Options) {
		o.SkipAutoOptions = true
	}
}

// ===== Diagnostics =====

// WithStderr sets a callback invoked for every line pinentry writes to stderr.
func WithStderr(handler func(string)) Option {
	return func(o *Options) {
		o.Stderr = handler
	}
}

// WithTransport replaces the subprocess transport. Intended for tests.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		o.Transport = transport
	}
}
