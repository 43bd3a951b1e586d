package pinentry

import (
	"context"

	"github.com/wagiedev/pinentry-go/internal/client"
)

// clientWrapper wraps the internal client to adapt it to the public interface.
type clientWrapper struct {
	impl *client.Client
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal client implementation.
func newClientImpl() Client {
	return &clientWrapper{impl: client.New()}
}

// Start spawns pinentry and waits for its greeting.
func (c *clientWrapper) Start(ctx context.Context, opts ...Option) error {
	return c.impl.Start(ctx, applyOptions(opts))
}

func (c *clientWrapper) set(ctx context.Context, name OptionName, value string) error {
	return c.impl.SetOption(ctx, name, &value)
}

// SetDescription sets the text shown above the entry field.
func (c *clientWrapper) SetDescription(ctx context.Context, text string) error {
	return c.set(ctx, OptionDescription, text)
}

// SetPrompt sets the label in front of the entry field.
func (c *clientWrapper) SetPrompt(ctx context.Context, text string) error {
	return c.set(ctx, OptionPrompt, text)
}

// SetTitle sets the window title.
func (c *clientWrapper) SetTitle(ctx context.Context, text string) error {
	return c.set(ctx, OptionTitle, text)
}

// SetOKText sets the label of the OK button.
func (c *clientWrapper) SetOKText(ctx context.Context, text string) error {
	return c.set(ctx, OptionOKText, text)
}

// SetCancelText sets the label of the Cancel button.
func (c *clientWrapper) SetCancelText(ctx context.Context, text string) error {
	return c.set(ctx, OptionCancelText, text)
}

// SetNotOKText sets the label of the "not OK" button.
func (c *clientWrapper) SetNotOKText(ctx context.Context, text string) error {
	return c.set(ctx, OptionNotOKText, text)
}

// SetErrorText sets an error shown with the next GetPin only.
func (c *clientWrapper) SetErrorText(ctx context.Context, text string) error {
	return c.set(ctx, OptionErrorText, text)
}

// SetTTYName sets the terminal used by curses pinentries.
func (c *clientWrapper) SetTTYName(ctx context.Context, tty string) error {
	return c.set(ctx, OptionTTYName, tty)
}

// SetTTYType sets the terminal type used by curses pinentries.
func (c *clientWrapper) SetTTYType(ctx context.Context, ttyType string) error {
	return c.set(ctx, OptionTTYType, ttyType)
}

// SetLocale sets the LC_CTYPE locale.
func (c *clientWrapper) SetLocale(ctx context.Context, locale string) error {
	return c.set(ctx, OptionLocale, locale)
}

// SetOption assigns value to the named option.
func (c *clientWrapper) SetOption(ctx context.Context, name OptionName, value *string) error {
	return c.impl.SetOption(ctx, name, value)
}

// Option returns the last value assigned to the named option.
func (c *clientWrapper) Option(name OptionName) (string, bool) {
	return c.impl.Option(name)
}

// GetPin asks the user for a secret.
func (c *clientWrapper) GetPin(ctx context.Context) (string, bool, error) {
	return c.impl.GetPin(ctx)
}

// Confirm asks a yes/no question.
func (c *clientWrapper) Confirm(ctx context.Context) (bool, error) {
	return c.impl.Confirm(ctx, false)
}

// ConfirmOneButton asks for acknowledgement with a single button.
func (c *clientWrapper) ConfirmOneButton(ctx context.Context) (bool, error) {
	return c.impl.Confirm(ctx, true)
}

// ShowMessage displays the description with an OK button.
func (c *clientWrapper) ShowMessage(ctx context.Context) error {
	return c.impl.Message(ctx)
}

// Call sends a raw protocol command.
func (c *clientWrapper) Call(ctx context.Context, line string) ([]string, error) {
	return c.impl.Call(ctx, line)
}

// LastCommand returns the most recent raw command sent to pinentry.
func (c *clientWrapper) LastCommand() string {
	return c.impl.LastCommand()
}

// State returns the lifecycle state of the session.
func (c *clientWrapper) State() State {
	return c.impl.State()
}

// Close terminates pinentry.
func (c *clientWrapper) Close() error {
	return c.impl.Close()
}
