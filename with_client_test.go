package pinentry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	pinentry "github.com/wagiedev/pinentry-go"
)

// fakeTransport answers every command with OK and records what was sent.
type fakeTransport struct {
	mu     sync.Mutex
	sent   []string
	closed int
}

func (f *fakeTransport) Start(_ context.Context) error { return nil }

func (f *fakeTransport) Send(_ context.Context, line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, line)

	return nil
}

func (f *fakeTransport) Receive(_ context.Context) ([]string, error) {
	return []string{"OK"}, nil
}

func (f *fakeTransport) TTYName() string { return "" }

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed++

	return nil
}

func TestWithClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := pinentry.WithClient(ctx, func(_ pinentry.Client) error {
		t.Error("callback should not be called with cancelled context")

		return nil
	})
	if err == nil {
		t.Error("expected error for cancelled context")
	}

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWithClient_CallbackError(t *testing.T) {
	transport := &fakeTransport{}
	sentinel := errors.New("boom")

	err := pinentry.WithClient(context.Background(), func(c pinentry.Client) error {
		require.Equal(t, pinentry.StateReady, c.State())

		return sentinel
	}, pinentry.WithTransport(transport), pinentry.WithoutAutoOptions())

	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 1, transport.closed)
}

func TestWithClient_ClosesOnPanic(t *testing.T) {
	transport := &fakeTransport{}

	var captured pinentry.Client

	require.Panics(t, func() {
		_ = pinentry.WithClient(context.Background(), func(c pinentry.Client) error {
			captured = c

			panic("callback exploded")
		}, pinentry.WithTransport(transport), pinentry.WithoutAutoOptions())
	})

	require.Equal(t, 1, transport.closed)
	require.Equal(t, pinentry.StateClosed, captured.State())
}

func TestWithClient_OptionsPassedToStart(t *testing.T) {
	transport := &fakeTransport{}

	err := pinentry.WithClient(context.Background(), func(c pinentry.Client) error {
		return c.SetTitle(context.Background(), "T")
	},
		pinentry.WithTransport(transport),
		pinentry.WithLocale("en_US.UTF-8"),
		pinentry.WithLogger(pinentry.NopLogger()),
	)

	require.NoError(t, err)
	require.Equal(t, []string{"OPTION lc-ctype=en_US.UTF-8", "SETTITLE %54"}, transport.sent)
}
