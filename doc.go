// Package pinentry provides a Go client for pinentry, the helper program
// GnuPG uses to ask users for PINs, passphrases and confirmations.
//
// The client spawns a pinentry executable as a child process and talks to
// it over stdin/stdout using pinentry's line-based command protocol. It
// never renders UI itself: the dialog (GTK, Qt, curses, macOS, ...) is
// whatever pinentry the caller points it at.
//
// # Basic Usage
//
// For one-off prompts, use the helper functions:
//
//	ctx := context.Background()
//	pin, err := pinentry.GetPin(ctx, "Unlock the signing key", "PIN:")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := pinentry.GetConfirm(ctx, "Delete 3 keys?")
//
// # Sessions
//
// To ask several questions in one dialog session, use WithClient, which
// guarantees pinentry is terminated on every exit path:
//
//	err := pinentry.WithClient(ctx, func(c pinentry.Client) error {
//	    _ = c.SetDescription(ctx, "Choose a passphrase")
//	    _ = c.SetPrompt(ctx, "PASS>")
//	    pass, _, err := c.GetPin(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    _ = c.SetOKText(ctx, "Yes")
//	    _ = c.SetCancelText(ctx, "No")
//	    _ = c.SetDescription(ctx, "Use this passphrase?")
//	    ok, err := c.Confirm(ctx)
//	    ...
//	},
//	    pinentry.WithTimeout(time.Minute),
//	    pinentry.WithGlobalGrab(false),
//	)
//
// # Logging
//
// For detailed operation tracking, use WithLogger. Secrets and option
// values are never logged:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	pin, err := pinentry.GetPin(ctx, "desc", "PIN:", pinentry.WithLogger(logger))
//
// # Error Handling
//
// The client returns typed errors:
//
//	pin, err := pinentry.GetPin(ctx, "Unlock", "PIN:")
//	if _, ok := errors.AsType[*pinentry.CancelledError](err); ok {
//	    return // the user closed the dialog
//	}
//	if peerErr, ok := errors.AsType[*pinentry.PeerError](err); ok {
//	    log.Fatalf("pinentry refused %q: %d %s", peerErr.LastCommand, peerErr.Code, peerErr.Message)
//	}
//	if startErr, ok := errors.AsType[*pinentry.StartupError](err); ok {
//	    log.Fatalf("could not run %s: %v", startErr.Executable, startErr)
//	}
//
// Declining a confirmation is not an error: Confirm returns false.
//
// # Requirements
//
// A pinentry executable must be installed. It is looked up in PATH unless
// WithExecutable names another program or path.
package pinentry
