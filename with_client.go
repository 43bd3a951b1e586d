package pinentry

import (
	"context"
	"fmt"
)

// WithClient manages client lifecycle with automatic cleanup.
//
// This helper creates a client, starts it with the provided options, runs
// the callback, and closes the client on every exit path, including a panic
// inside fn. pinentry is never left running after WithClient returns.
//
// Example usage:
//
//	err := pinentry.WithClient(ctx, func(c pinentry.Client) error {
//	    if err := c.SetDescription(ctx, "Enter a password."); err != nil {
//	        return err
//	    }
//	    pin, _, err := c.GetPin(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    // use pin...
//	    return nil
//	},
//	    pinentry.WithLogger(log),
//	    pinentry.WithTimeout(time.Minute),
//	)
func WithClient(ctx context.Context, fn func(Client) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	client := NewClient()

	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Warn("failed to close client", "error", closeErr)
		}
	}()

	if err := client.Start(ctx, opts...); err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}

	return fn(client)
}
