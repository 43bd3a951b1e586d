package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/pinentry-go/internal/config"
	"github.com/wagiedev/pinentry-go/internal/errors"
	"github.com/wagiedev/pinentry-go/internal/protocol"
	"github.com/wagiedev/pinentry-go/internal/subprocess"
	"github.com/wagiedev/pinentry-go/internal/terminal"
)

// Client speaks the pinentry protocol over a single transport.
//
// A Client drives one half-duplex exchange at a time; callers must not
// issue protocol calls concurrently. Close may be called from any
// goroutine to abort a pending exchange.
type Client struct {
	log       *slog.Logger
	transport config.Transport

	mu          sync.Mutex // Guards state, values and lastCommand
	state       State
	values      map[config.Option]string
	lastCommand string
}

// New creates a client in the Unstarted state.
func New() *Client {
	return &Client{
		log:    config.DiscardLogger(),
		values: make(map[config.Option]string),
	}
}

// Start spawns pinentry (or starts the injected transport), then sends the
// ttyname and lc-ctype options unless options.SkipAutoOptions is set.
//
// A client whose Start fails is closed and cannot be restarted.
func (c *Client) Start(ctx context.Context, options *config.Options) error {
	if options == nil {
		options = &config.Options{}
	}

	c.mu.Lock()

	switch {
	case c.state == StateClosed:
		c.mu.Unlock()

		return errors.ErrSessionClosed
	case c.state == StateReady || c.transport != nil:
		c.mu.Unlock()

		return errors.ErrSessionAlreadyStarted
	}

	log := options.Log().With("session_id", ulid.Make().String())
	c.log = log.With("component", "client")

	transport := options.Transport
	if transport == nil {
		transport = subprocess.NewSession(log, options)
	} else {
		c.log.Debug("Using injected custom transport")
	}

	c.transport = transport
	c.mu.Unlock()

	// The handshake may block; Close can still abort it from another goroutine.
	if err := transport.Start(ctx); err != nil {
		_ = c.Close()

		return fmt.Errorf("start transport: %w", err)
	}

	c.mu.Lock()

	if c.state == StateClosed {
		c.mu.Unlock()

		return errors.ErrSessionClosed
	}

	c.state = StateReady
	c.mu.Unlock()

	if options.SkipAutoOptions {
		return nil
	}

	if err := c.configureEnvironment(ctx, options); err != nil {
		_ = c.Close()

		return err
	}

	return nil
}

// configureEnvironment sends the terminal and locale options.
func (c *Client) configureEnvironment(ctx context.Context, options *config.Options) error {
	if tty := c.transport.TTYName(); tty != "" {
		if err := c.SetOption(ctx, config.OptionTTYName, &tty); err != nil {
			return fmt.Errorf("set tty name: %w", err)
		}
	}

	locale := options.Locale
	if locale == "" {
		locale = terminal.Locale()
	}

	if locale != "" {
		if err := c.SetOption(ctx, config.OptionLocale, &locale); err != nil {
			return fmt.Errorf("set locale: %w", err)
		}
	}

	return nil
}

// Call sends one raw command line and returns the response lines.
//
// SET* arguments are percent-escaped. An "ERR <code> <message>" line in the
// response is returned as *errors.PeerError. Any other line starting with
// "ERR" is an *errors.ProtocolError and closes the client. Otherwise the
// lines are returned as read.
func (c *Client) Call(ctx context.Context, line string) ([]string, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	line = protocol.EncodeCommand(line)

	c.mu.Lock()
	c.lastCommand = line
	c.mu.Unlock()

	c.log.Debug("Sending command", "verb", verb(line))

	if err := c.transport.Send(ctx, line); err != nil {
		return nil, c.fail(err)
	}

	lines, err := c.transport.Receive(ctx)
	if err != nil {
		return lines, c.fail(err)
	}

	for _, l := range lines {
		if code, message, ok := protocol.ParseError(l); ok {
			c.log.Debug("Peer returned error", "verb", verb(line), "code", code, "message", message)

			return lines, &errors.PeerError{Code: code, Message: message, LastCommand: line}
		}

		// An ERR status without "<code> <message>" must never read as success.
		if protocol.IsErrStatus(l) {
			c.log.Error("Malformed error status from peer", "verb", verb(line))

			return lines, c.fail(&errors.ProtocolError{
				Lines: lines,
				Err:   fmt.Errorf("malformed error status %q", l),
			})
		}
	}

	return lines, nil
}

// SetOption assigns value to option. A nil value is a no-op. Peer errors
// propagate: an invalid value is the caller's mistake.
func (c *Client) SetOption(ctx context.Context, option config.Option, value *string) error {
	if err := c.ready(); err != nil {
		return err
	}

	if value == nil {
		return nil
	}

	cmd, err := option.Command(*value)
	if err != nil {
		return fmt.Errorf("%w: %q", errors.ErrUnknownOption, option.String())
	}

	c.log.Debug("Setting option", "option", option.String())

	if _, err := c.Call(ctx, cmd); err != nil {
		return err
	}

	c.mu.Lock()
	c.values[option] = *value
	c.mu.Unlock()

	return nil
}

// Option returns the last value successfully assigned to option.
func (c *Client) Option(option config.Option) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.values[option]

	return v, ok
}

// GetPin asks for a secret. ok is false when the peer returned no data
// line. A cancelled prompt yields *errors.CancelledError.
func (c *Client) GetPin(ctx context.Context) (pin string, ok bool, err error) {
	// pinentry shows SETERROR text for one prompt only.
	defer c.forget(config.OptionErrorText)

	lines, err := c.Call(ctx, protocol.VerbGetPin)
	if err != nil {
		if peerErr, isPeer := stderrors.AsType[*errors.PeerError](err); isPeer && isCancellation(peerErr.Message) {
			return "", false, &errors.CancelledError{PeerError: peerErr}
		}

		return "", false, err
	}

	for _, l := range lines {
		if payload, found := protocol.DataPayload(l); found {
			return protocol.DecodeData(payload), true, nil
		}
	}

	return "", false, nil
}

// Confirm asks a yes/no question. Declining returns false with a nil error.
func (c *Client) Confirm(ctx context.Context, oneButton bool) (bool, error) {
	cmd := protocol.VerbConfirm
	if oneButton {
		cmd += " " + protocol.FlagOneButton
	}

	if _, err := c.Call(ctx, cmd); err != nil {
		if peerErr, ok := stderrors.AsType[*errors.PeerError](err); ok && isDecline(peerErr.Message) {
			c.log.Debug("Confirmation declined", "code", peerErr.Code)

			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Message shows the current description with a single button.
func (c *Client) Message(ctx context.Context) error {
	_, err := c.Call(ctx, protocol.VerbMessage)

	return err
}

// LastCommand returns the most recent raw line sent to the peer.
func (c *Client) LastCommand() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastCommand
}

// State returns the lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Close terminates the peer. It is idempotent and safe in any state.
func (c *Client) Close() error {
	c.mu.Lock()

	if c.state == StateClosed {
		c.mu.Unlock()

		return nil
	}

	c.state = StateClosed
	transport := c.transport
	c.mu.Unlock()

	if transport == nil {
		return nil
	}

	if err := transport.Close(); err != nil {
		c.log.Debug("Close transport failed", "error", err)
	}

	return nil
}

// fail closes the client after a protocol error; the stream can no longer
// be trusted to be in step with the peer.
func (c *Client) fail(err error) error {
	if _, ok := stderrors.AsType[*errors.ProtocolError](err); ok {
		c.log.Debug("Closing session after protocol error", "error", err)

		_ = c.Close()
	}

	return err
}

func (c *Client) ready() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateReady:
		return nil
	case StateClosed:
		return errors.ErrSessionClosed
	default:
		return errors.ErrSessionNotReady
	}
}

func (c *Client) forget(option config.Option) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.values, option)
}

// isCancellation matches pinentry's "Operation cancelled" and the older
// "canceled" spelling.
func isCancellation(message string) bool {
	return strings.Contains(strings.ToLower(message), "cancel")
}

func isDecline(message string) bool {
	m := strings.ToLower(message)

	return strings.Contains(m, "cancel") || strings.Contains(m, "not confirmed")
}

// verb returns the command word of line, so arguments never reach the log.
func verb(line string) string {
	v, _, _ := strings.Cut(line, " ")

	return v
}
