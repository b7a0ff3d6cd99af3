//go:build windows

package transport

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/meme/r2pipe/internal/errors"
	"github.com/meme/r2pipe/internal/session"
)

// NewInherited builds a transport over the duplex named pipe announced in
// R2PIPE_PATH. Raw descriptor numbers do not cross the process boundary on
// Windows, so the parent hands down a pipe name instead; the framing
// contract is identical to the descriptor-based session.
func NewInherited(log *slog.Logger) (*Inherited, error) {
	path, ok := session.PipePath()
	if !ok {
		in, out, _ := session.Descriptors()

		return nil, &errors.NoSessionError{In: in, Out: out}
	}

	f, err := session.OpenNamedPipe(path)
	if err != nil {
		return nil, &errors.ConnectionError{Err: err}
	}

	log = log.With("component", "inherited_transport", "session_id", ulid.Make().String())
	log.Debug("Attached to inherited session", "pipe_path", path)

	return &Inherited{
		log:   log,
		r:     bufio.NewReaderSize(f, readBufferSize),
		w:     f,
		owned: []io.Closer{f},
	}, nil
}
