package transport

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/meme/r2pipe/internal/errors"
	"github.com/meme/r2pipe/internal/frame"
)

// Inherited drives the r2pipe session handed down by a parent radare2
// process. Read framing matches the spawned transport, but commands are
// written as-is: no trailing newline, and there is no sentinel byte to
// consume since the parent opened the channel long before we got here.
type Inherited struct {
	log    *slog.Logger
	r      *bufio.Reader
	w      io.Writer
	owned  []io.Closer
	mu     sync.Mutex
	closed bool
}

// Cmd writes the raw command bytes and reads one NUL-delimited response.
func (t *Inherited) Cmd(ctx context.Context, cmd string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", errors.ErrPipeClosed
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	t.log.Debug("Sending command", "cmd", cmd)

	if _, err := io.WriteString(t.w, cmd); err != nil {
		return "", &errors.ConnectionError{Err: err}
	}

	return readResponse(t.r)
}

// Cmdj sends a command and parses the response as JSON.
func (t *Inherited) Cmdj(ctx context.Context, cmd string) (any, error) {
	res, err := t.Cmd(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return frame.ParseJSON(res)
}

// Close releases the duplicated descriptors. The parent's own descriptors
// are untouched.
func (t *Inherited) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	t.closed = true

	t.log.Debug("Closing inherited session")

	for _, c := range t.owned {
		_ = c.Close()
	}

	return nil
}
