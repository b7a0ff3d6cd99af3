package transport

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/meme/r2pipe/internal/errors"
	"github.com/meme/r2pipe/internal/frame"
	"github.com/meme/r2pipe/internal/r2cli"
)

// readBufferSize is the initial buffer for NUL-delimited response reads.
const readBufferSize = 64 * 1024

// Spawn drives a freshly launched radare2 child process over piped stdio.
//
// Requests carry a trailing newline; responses are read up to and including
// a NUL delimiter. The single sentinel byte radare2 emits before its first
// prompt is consumed during construction.
type Spawn struct {
	log    *slog.Logger
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	mu     sync.Mutex
	closed bool
}

// NewSpawn launches exePath with the given pipe-mode arguments and consumes
// the leading sentinel byte so it never pollutes the first real response.
//
// The process inherits the lifetime of ctx: cancelling it kills the child.
func NewSpawn(ctx context.Context, log *slog.Logger, exePath string, args []string) (*Spawn, error) {
	log = log.With("component", "spawn_transport", "session_id", ulid.Make().String())

	//nolint:gosec // G204: launching radare2 with caller-supplied args is the point
	cmd := exec.CommandContext(ctx, exePath, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &errors.SpawnError{ExePath: exePath, Err: err}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &errors.SpawnError{ExePath: exePath, Err: err}
	}

	if err := cmd.Start(); err != nil {
		log.Error("Failed to start radare2 process", "error", err)

		return nil, &errors.SpawnError{ExePath: exePath, Err: err}
	}

	log.Debug("radare2 process started", "pid", cmd.Process.Pid, "args", args)

	t := &Spawn{
		log:    log,
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReaderSize(stdout, readBufferSize),
	}

	// Flush the sentinel byte emitted before the first prompt.
	var sentinel [1]byte
	if _, err := io.ReadFull(t.stdout, sentinel[:]); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()

		return nil, &errors.SpawnError{ExePath: exePath, Err: err}
	}

	return t, nil
}

// Cmd sends a command with a trailing newline and reads one NUL-delimited
// response.
func (t *Spawn) Cmd(ctx context.Context, cmd string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", errors.ErrPipeClosed
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	t.log.Debug("Sending command", "cmd", cmd)

	if _, err := io.WriteString(t.stdin, cmd+"\n"); err != nil {
		return "", &errors.ConnectionError{Err: err}
	}

	return readResponse(t.stdout)
}

// Cmdj sends a command and parses the response as JSON.
func (t *Spawn) Cmdj(ctx context.Context, cmd string) (any, error) {
	res, err := t.Cmd(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return frame.ParseJSON(res)
}

// Close asks the child to quit and waits for it. Failures are discarded;
// the child is already gone in the common case.
func (t *Spawn) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	t.closed = true

	t.log.Debug("Closing spawned radare2 process")

	_, _ = io.WriteString(t.stdin, r2cli.QuitCommand+"\n")
	_ = t.stdin.Close()
	_ = t.cmd.Wait()

	return nil
}

// readResponse reads bytes up to and including one NUL delimiter and decodes
// them. EOF before the delimiter is not an I/O error: whatever arrived is
// framed as the final response (and zero bytes is ErrEmptyResponse).
func readResponse(r *bufio.Reader) (string, error) {
	raw, err := r.ReadBytes(frame.Delim)
	if err != nil && err != io.EOF {
		return "", &errors.ConnectionError{Err: err}
	}

	return frame.Trim(raw)
}
