package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meme/r2pipe/internal/errors"
)

// serveHTTP exposes the /cmd/<command> route of an r2 web server.
func serveHTTP(t *testing.T, respond func(cmd string) string) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/cmd/", func(w http.ResponseWriter, r *http.Request) {
		cmd, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), "/cmd/"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		_, _ = w.Write([]byte(respond(cmd)))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return strings.TrimPrefix(srv.URL, "http://")
}

// TestHTTP_Echo tests that the whole body comes back as the result.
func TestHTTP_Echo(t *testing.T) {
	host := serveHTTP(t, func(cmd string) string { return cmd })

	tr := NewHTTP(testLogger(), host)

	res, err := tr.Cmd(context.Background(), "afl")
	require.NoError(t, err)
	require.Equal(t, "afl", res)
}

// TestHTTP_CommandEscaping tests that commands with spaces and slashes
// survive the URL path.
func TestHTTP_CommandEscaping(t *testing.T) {
	host := serveHTTP(t, func(cmd string) string { return "got:" + cmd })

	tr := NewHTTP(testLogger(), host)

	res, err := tr.Cmd(context.Background(), "pd 10 @ sym/main")
	require.NoError(t, err)
	require.Equal(t, "got:pd 10 @ sym/main", res)
}

// TestHTTP_EmptyBody tests that an empty body is an empty-response error.
func TestHTTP_EmptyBody(t *testing.T) {
	host := serveHTTP(t, func(string) string { return "" })

	tr := NewHTTP(testLogger(), host)

	_, err := tr.Cmd(context.Background(), "i")
	require.ErrorIs(t, err, errors.ErrEmptyResponse)
}

// TestHTTP_Cmdj tests JSON parsing over the HTTP transport.
func TestHTTP_Cmdj(t *testing.T) {
	host := serveHTTP(t, func(string) string { return `{"bin":{"arch":"arm"}}` })

	tr := NewHTTP(testLogger(), host)

	v, err := tr.Cmdj(context.Background(), "ij")
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)

	bin, ok := obj["bin"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "arm", bin["arch"])
}

// TestHTTP_RequestFailure tests a dead endpoint.
func TestHTTP_RequestFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	tr := NewHTTP(testLogger(), host)

	_, err := tr.Cmd(context.Background(), "i")

	var connErr *errors.ConnectionError
	require.ErrorAs(t, err, &connErr)
}

// TestHTTP_CloseNoop tests that Close succeeds and the transport stays usable
// per the self-contained-request contract.
func TestHTTP_CloseNoop(t *testing.T) {
	host := serveHTTP(t, func(cmd string) string { return cmd })

	tr := NewHTTP(testLogger(), host)
	require.NoError(t, tr.Close())

	res, err := tr.Cmd(context.Background(), "s")
	require.NoError(t, err)
	require.Equal(t, "s", res)
}
