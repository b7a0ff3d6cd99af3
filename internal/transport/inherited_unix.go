//go:build !windows

package transport

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/meme/r2pipe/internal/errors"
	"github.com/meme/r2pipe/internal/session"
)

// NewInherited builds a transport over the descriptors announced in
// R2PIPE_IN / R2PIPE_OUT. The descriptors are duplicated, not adopted, so
// the parent keeps ownership of the originals. Returns NoSessionError when
// the environment does not announce a session.
func NewInherited(log *slog.Logger) (*Inherited, error) {
	in, out, ok := session.Descriptors()
	if !ok {
		return nil, &errors.NoSessionError{In: in, Out: out}
	}

	r, w, err := session.Duplicate(in, out)
	if err != nil {
		return nil, err
	}

	log = log.With("component", "inherited_transport", "session_id", ulid.Make().String())
	log.Debug("Attached to inherited session", "fd_in", in, "fd_out", out)

	return &Inherited{
		log:   log,
		r:     bufio.NewReaderSize(r, readBufferSize),
		w:     w,
		owned: []io.Closer{r, w},
	}, nil
}
