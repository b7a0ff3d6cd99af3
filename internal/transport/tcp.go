package transport

import (
	"context"
	"io"
	"log/slog"
	"net"

	"github.com/oklog/ulid/v2"

	"github.com/meme/r2pipe/internal/errors"
	"github.com/meme/r2pipe/internal/frame"
)

// TCP drives a radare2 TCP server ("& .:9080" on the r2 side).
//
// The server speaks one exchange per connection: it reads the command,
// writes the response, and closes. Each Cmd therefore dials fresh, reads to
// EOF, and appends a synthetic NUL so the shared framing path applies. No
// connection is kept between calls.
type TCP struct {
	log  *slog.Logger
	addr string
}

// NewTCP resolves and remembers the peer address. The initial dial verifies
// the server is reachable and pins the address the resolver picked.
func NewTCP(ctx context.Context, log *slog.Logger, addr string) (*TCP, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &errors.ConnectionError{Err: err}
	}

	peer := conn.RemoteAddr().String()
	_ = conn.Close()

	log = log.With("component", "tcp_transport", "session_id", ulid.Make().String(), "addr", peer)
	log.Debug("Resolved radare2 TCP endpoint")

	return &TCP{log: log, addr: peer}, nil
}

// Cmd dials the remembered peer, writes the raw command bytes, and reads
// the response until the server closes the stream.
func (t *TCP) Cmd(ctx context.Context, cmd string) (string, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return "", &errors.ConnectionError{Err: err}
	}
	defer conn.Close()

	t.log.Debug("Sending command", "cmd", cmd)

	if _, err := io.WriteString(conn, cmd); err != nil {
		return "", &errors.ConnectionError{Err: err}
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return "", &errors.ConnectionError{Err: err}
	}

	// The server closes instead of writing a delimiter; restore one so the
	// strip/decode path is shared with the stdio transports.
	raw = append(raw, frame.Delim)

	return frame.Trim(raw)
}

// Cmdj sends a command and parses the response as JSON.
func (t *TCP) Cmdj(ctx context.Context, cmd string) (any, error) {
	res, err := t.Cmd(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return frame.ParseJSON(res)
}

// Close is a no-op; every exchange already opens and closes its own
// connection.
func (t *TCP) Close() error {
	return nil
}
