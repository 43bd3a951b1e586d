package config

import "log/slog"

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Log returns o.Logger, or a discarding logger when none is set.
func (o *Options) Log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return DiscardLogger()
	}

	return o.Logger
}
