package config

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscardLogger(t *testing.T) {
	log := DiscardLogger()
	require.NotNil(t, log)
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestOptionsLog(t *testing.T) {
	var buf bytes.Buffer

	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name    string
		options *Options
		enabled bool
	}{
		{name: "nil options", options: nil, enabled: false},
		{name: "nil logger", options: &Options{}, enabled: false},
		{name: "custom logger", options: &Options{Logger: custom}, enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := tt.options.Log()
			require.NotNil(t, log)
			require.Equal(t, tt.enabled, log.Enabled(context.Background(), slog.LevelDebug))
		})
	}

	(&Options{Logger: custom}).Log().Debug("hello")
	require.Contains(t, buf.String(), "msg=hello")
}
