package pinentry

import (
	"log/slog"

	"github.com/wagiedev/pinentry-go/internal/config"
)

// NopLogger returns a logger that discards all output.
// Use this when you want silent operation with no logging overhead.
func NopLogger() *slog.Logger {
	return config.DiscardLogger()
}
