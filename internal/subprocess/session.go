package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/pinentry-go/internal/cli"
	"github.com/wagiedev/pinentry-go/internal/config"
	"github.com/wagiedev/pinentry-go/internal/errors"
	"github.com/wagiedev/pinentry-go/internal/protocol"
	"github.com/wagiedev/pinentry-go/internal/terminal"
)

const (
	// maxLineSize is the maximum length of a single response line.
	maxLineSize = 1024 * 1024 // 1MB
	// maxStderrBufferSize caps the stderr kept for error reports.
	maxStderrBufferSize = 64 * 1024
)

// Session implements config.Transport by spawning a pinentry subprocess.
//
// A Session dropped without Close still has its process killed and reaped
// once the Session is garbage collected.
type Session struct {
	log     *slog.Logger
	options *config.Options

	path string
	args []string

	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  *bufio.Scanner
	stderr  *stderrBuffer
	eg      *errgroup.Group
	cleanup runtime.Cleanup
	ttyName string

	mu      sync.Mutex // Protects the lifecycle fields below
	started bool
	closed  bool
}

// Compile-time verification that Session implements the Transport interface.
var _ config.Transport = (*Session)(nil)

// NewSession creates a session for the given options. Nothing is spawned
// until Start.
func NewSession(log *slog.Logger, options *config.Options) *Session {
	if options == nil {
		options = &config.Options{}
	}

	return &Session{
		log:     log.With("component", "session"),
		options: options,
		stderr:  &stderrBuffer{callback: options.Stderr},
		eg:      &errgroup.Group{},
	}
}

// Start spawns pinentry and waits for its greeting.
//
// The context bounds the lifetime of the process: cancelling it kills
// pinentry, which also unblocks any pending Receive.
//
// Returns StartupError if the executable cannot be found or started, or
// if the first line it prints is not a known greeting.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()

	if err := s.spawn(ctx); err != nil {
		s.mu.Unlock()

		return err
	}

	s.mu.Unlock()

	// Close may run concurrently from here on; killing the process ends the handshake.
	if err := s.handshake(); err != nil {
		s.mu.Lock()

		if !s.closed {
			s.closed = true
			s.teardown()
		}

		s.mu.Unlock()

		// Stderr is complete only once the process has been reaped.
		if startErr, ok := stderrors.AsType[*errors.StartupError](err); ok {
			startErr.Stderr = s.stderr.String()
		}

		return err
	}

	s.ttyName = s.options.TTYName
	if s.ttyName == "" {
		s.ttyName = terminal.Controlling()
	}

	s.log.Debug("pinentry ready", "tty", s.ttyName)

	return nil
}

// spawn starts the process and wires its pipes. Caller must hold s.mu.
func (s *Session) spawn(ctx context.Context) error {
	if s.closed {
		return errors.ErrSessionClosed
	}

	if s.started {
		return errors.ErrSessionAlreadyStarted
	}

	s.started = true

	path, err := cli.Discover(s.log, s.options.Executable)
	if err != nil {
		return s.startupError(err)
	}

	s.path = path
	s.args = cli.BuildArgs(s.options)
	s.log.Debug("Built pinentry arguments", "path", s.path, "args", s.args)

	//nolint:gosec // G204: the executable is chosen by the caller
	cmd := exec.CommandContext(ctx, s.path, s.args...)
	cmd.Env = cli.BuildEnvironment(s.options)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return s.startupError(fmt.Errorf("stdin pipe: %w", err))
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return s.startupError(fmt.Errorf("stdout pipe: %w", err))
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return s.startupError(fmt.Errorf("stderr pipe: %w", err))
	}

	if err := cmd.Start(); err != nil {
		s.log.Error("Failed to start pinentry", "error", err)

		return s.startupError(fmt.Errorf("start process: %w", err))
	}

	s.cmd = cmd
	s.cleanup = runtime.AddCleanup(s, reap, cmd.Process)
	s.log.Info("pinentry started", "pid", cmd.Process.Pid)

	// The goroutine must not capture s, or the cleanup above never runs.
	buf := s.stderr
	s.eg.Go(func() error {
		buf.drain(stderr)

		return nil
	})

	s.attach(stdin, stdout)

	return nil
}

// attach wires the protocol streams.
func (s *Session) attach(stdin io.WriteCloser, stdout io.Reader) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	s.stdin = stdin
	s.stdout = scanner
}

// handshake reads exactly one line and checks it against the known greetings.
func (s *Session) handshake() error {
	if !s.stdout.Scan() {
		err := s.stdout.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}

		return s.startupError(fmt.Errorf("read greeting: %w", err))
	}

	greeting := s.stdout.Text()
	if !protocol.IsGreeting(greeting) {
		s.log.Error("Unexpected pinentry greeting", "greeting", greeting)

		return &errors.StartupError{
			Executable: s.executable(),
			Args:       s.args,
			Greeting:   greeting,
			Stderr:     s.stderr.String(),
		}
	}

	s.log.Debug("Received greeting", "greeting", greeting)

	return nil
}

// Send writes one command line followed by a newline.
func (s *Session) Send(ctx context.Context, line string) error {
	if err := s.ready(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := io.WriteString(s.stdin, line+"\n"); err != nil {
		s.log.Error("Failed to write to pinentry", "error", err)

		return &errors.ProtocolError{
			Stderr: s.stderr.String(),
			Err:    fmt.Errorf("write to stdin: %w", err),
		}
	}

	return nil
}

// Receive reads lines until a status line, inclusive.
//
// It blocks until pinentry answers. The only way to abandon a pending read
// is to terminate the process, via Close or the Start context.
func (s *Session) Receive(ctx context.Context) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var lines []string

	for s.stdout.Scan() {
		line := s.stdout.Text()
		lines = append(lines, line)

		if protocol.IsStatus(line) {
			return lines, nil
		}
	}

	err := s.stdout.Err()
	if err == nil {
		err = io.ErrUnexpectedEOF
	}

	s.log.Error("pinentry output ended before status line", "error", err, "lines", len(lines))

	return lines, &errors.ProtocolError{
		Lines:  lines,
		Stderr: s.stderr.String(),
		Err:    fmt.Errorf("read response: %w", err),
	}
}

// TTYName returns the terminal captured at Start, or "".
func (s *Session) TTYName() string {
	return s.ttyName
}

// Close terminates the pinentry process.
//
// It's safe to call Close multiple times, before Start, or after the
// process exited on its own. Termination failures are logged, not returned.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	s.teardown()

	return nil
}

// reap kills p and collects its exit status so it does not linger as a
// zombie. Used as the GC cleanup for sessions that were never closed.
func reap(p *os.Process) {
	_ = p.Kill()
	_, _ = p.Wait()
}

// teardown kills and reaps the process. Caller must hold s.mu.
func (s *Session) teardown() {
	if s.stdin != nil {
		_ = s.stdin.Close()
	}

	if s.cmd == nil || s.cmd.Process == nil {
		return
	}

	s.cleanup.Stop()

	s.log.Debug("Killing pinentry", "pid", s.cmd.Process.Pid)

	if err := s.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		s.log.Debug("Kill pinentry failed", "error", err)
	}

	_ = s.eg.Wait()

	if err := s.cmd.Wait(); err != nil {
		s.log.Debug("pinentry exited", "error", err)
	}

	s.cmd = nil
}

func (s *Session) ready() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return errors.ErrSessionClosed
	case s.stdin == nil || s.stdout == nil:
		return errors.ErrSessionNotReady
	default:
		return nil
	}
}

func (s *Session) executable() string {
	if s.path != "" {
		return s.path
	}

	if s.options.Executable != "" {
		return s.options.Executable
	}

	return config.DefaultExecutable
}

func (s *Session) startupError(err error) error {
	return &errors.StartupError{
		Executable: s.executable(),
		Args:       s.args,
		Stderr:     s.stderr.String(),
		Err:        err,
	}
}

// stderrBuffer collects stderr lines for diagnostics, forwarding each line
// to an optional callback.
type stderrBuffer struct {
	mu       sync.Mutex
	buf      strings.Builder
	callback func(string)
}

func (b *stderrBuffer) drain(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		b.mu.Lock()

		if b.buf.Len() < maxStderrBufferSize {
			if b.buf.Len() > 0 {
				b.buf.WriteString("\n")
			}

			b.buf.WriteString(line)
		}

		b.mu.Unlock()

		if b.callback != nil {
			b.callback(line)
		}
	}
}

func (b *stderrBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return strings.TrimSpace(b.buf.String())
}
