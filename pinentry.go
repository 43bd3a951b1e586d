package pinentry

import "context"

// GetPin starts pinentry, asks for a secret with the given description and
// prompt, and closes pinentry again. Empty description or prompt leave
// pinentry's defaults in place.
func GetPin(ctx context.Context, description, prompt string, opts ...Option) (string, error) {
	var pin string

	err := WithClient(ctx, func(c Client) error {
		if err := c.SetOption(ctx, OptionDescription, optional(description)); err != nil {
			return err
		}

		if err := c.SetOption(ctx, OptionPrompt, optional(prompt)); err != nil {
			return err
		}

		var err error

		pin, _, err = c.GetPin(ctx)

		return err
	}, opts...)

	return pin, err
}

// GetConfirm starts pinentry, asks the user to confirm description, and
// closes pinentry again. Declining returns false with a nil error.
func GetConfirm(ctx context.Context, description string, opts ...Option) (bool, error) {
	var confirmed bool

	err := WithClient(ctx, func(c Client) error {
		if err := c.SetOption(ctx, OptionDescription, optional(description)); err != nil {
			return err
		}

		var err error

		confirmed, err = c.Confirm(ctx)

		return err
	}, opts...)

	return confirmed, err
}

// ShowMessage starts pinentry, shows description with an OK button, and
// closes pinentry again.
func ShowMessage(ctx context.Context, description string, opts ...Option) error {
	return WithClient(ctx, func(c Client) error {
		if err := c.SetOption(ctx, OptionDescription, optional(description)); err != nil {
			return err
		}

		return c.ShowMessage(ctx)
	}, opts...)
}

// optional maps "" to an unset option.
func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
