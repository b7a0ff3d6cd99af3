package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/meme/r2pipe/internal/errors"
	"github.com/meme/r2pipe/internal/frame"
)

// HTTP drives a radare2 HTTP server ("& =h 9090" on the r2 side).
//
// Commands go out as GET /cmd/<url-escaped command>; the entire response
// body is the result. There is no delimiter byte on this transport.
type HTTP struct {
	log    *slog.Logger
	host   string
	client *http.Client
}

// NewHTTP remembers the host:port to query. No connection is made until the
// first command.
func NewHTTP(log *slog.Logger, host string) *HTTP {
	log = log.With("component", "http_transport", "session_id", ulid.Make().String(), "host", host)

	return &HTTP{
		log:    log,
		host:   host,
		client: &http.Client{},
	}
}

// Cmd issues the command as a GET request and returns the body as text.
func (t *HTTP) Cmd(ctx context.Context, cmd string) (string, error) {
	u := fmt.Sprintf("http://%s/cmd/%s", t.host, url.PathEscape(cmd))

	t.log.Debug("Sending command", "cmd", cmd, "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", &errors.ConnectionError{Err: err}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", &errors.ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &errors.ConnectionError{Err: err}
	}

	if len(body) == 0 {
		return "", errors.ErrEmptyResponse
	}

	if !utf8.Valid(body) {
		return "", &errors.DecodeError{Raw: body}
	}

	return string(body), nil
}

// Cmdj sends a command and parses the response as JSON.
func (t *HTTP) Cmdj(ctx context.Context, cmd string) (any, error) {
	res, err := t.Cmd(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return frame.ParseJSON(res)
}

// Close is a no-op; every request is already self-contained.
func (t *HTTP) Close() error {
	return nil
}
