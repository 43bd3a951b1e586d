package pinentry

import "context"

// Client provides a stateful session with one pinentry process.
//
// Lifecycle: Clients are single-use. Start spawns pinentry and performs the
// handshake; Close terminates it. After Close, create a new client with
// NewClient(). Protocol calls made before Start or after Close fail with
// ErrSessionNotReady or ErrSessionClosed without contacting pinentry.
//
// A Client is half-duplex: issue one call at a time. Close may be called from
// another goroutine to abort a prompt that is waiting for the user.
//
// Example usage:
//
//	client := pinentry.NewClient()
//	defer client.Close()
//
//	if err := client.Start(ctx, pinentry.WithTimeout(time.Minute)); err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = client.SetDescription(ctx, "Unlock the signing key")
//	_ = client.SetPrompt(ctx, "PIN:")
//
//	pin, _, err := client.GetPin(ctx)
//	if _, ok := errors.AsType[*pinentry.CancelledError](err); ok {
//	    return // user dismissed the dialog
//	}
type Client interface {
	// Start spawns pinentry and waits for its greeting, then sends the
	// terminal and locale options. Returns StartupError on failure.
	Start(ctx context.Context, opts ...Option) error

	// SetDescription sets the text shown above the entry field.
	SetDescription(ctx context.Context, text string) error

	// SetPrompt sets the label in front of the entry field.
	SetPrompt(ctx context.Context, text string) error

	// SetTitle sets the window title.
	SetTitle(ctx context.Context, text string) error

	// SetOKText sets the label of the OK button.
	SetOKText(ctx context.Context, text string) error

	// SetCancelText sets the label of the Cancel button.
	SetCancelText(ctx context.Context, text string) error

	// SetNotOKText sets the label of the "not OK" button.
	SetNotOKText(ctx context.Context, text string) error

	// SetErrorText sets an error shown with the next GetPin only.
	SetErrorText(ctx context.Context, text string) error

	// SetTTYName sets the terminal used by curses pinentries.
	SetTTYName(ctx context.Context, tty string) error

	// SetTTYType sets the terminal type used by curses pinentries.
	SetTTYType(ctx context.Context, ttyType string) error

	// SetLocale sets the LC_CTYPE locale, e.g. "en_US.UTF-8".
	SetLocale(ctx context.Context, locale string) error

	// SetOption assigns value to the named option. A nil value is a no-op.
	SetOption(ctx context.Context, name OptionName, value *string) error

	// Option returns the last value assigned to the named option.
	Option(name OptionName) (string, bool)

	// GetPin asks the user for a secret. ok is false when pinentry returned
	// no data. Returns CancelledError when the user dismissed the prompt.
	GetPin(ctx context.Context) (pin string, ok bool, err error)

	// Confirm asks a yes/no question. Declining returns false, nil.
	Confirm(ctx context.Context) (bool, error)

	// ConfirmOneButton is Confirm with a single acknowledgement button.
	ConfirmOneButton(ctx context.Context) (bool, error)

	// ShowMessage displays the description with an OK button.
	ShowMessage(ctx context.Context) error

	// Call sends a raw protocol command and returns the response lines.
	// SET* arguments are percent-escaped.
	Call(ctx context.Context, line string) ([]string, error)

	// LastCommand returns the most recent raw command sent to pinentry.
	LastCommand() string

	// State returns the lifecycle state of the session.
	State() State

	// Close terminates pinentry. It is safe to call multiple times.
	Close() error
}

// NewClient creates a new, unstarted client.
func NewClient() Client {
	return newClientImpl()
}
