package r2pipe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeR2Script mimics radare2 -q0: one sentinel byte at startup, then each
// command line echoed back with a trailing NUL.
const fakeR2Script = `#!/bin/sh
printf '\0'
while IFS= read -r line; do
  if [ "$line" = "q!" ]; then exit 0; fi
  printf '%s\0' "$line"
done
`

// fakeR2 writes an executable echo script standing in for radare2.
func fakeR2(t *testing.T) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake radare2 is a shell script")
	}

	path := filepath.Join(t.TempDir(), "fake-r2")
	require.NoError(t, os.WriteFile(path, []byte(fakeR2Script), 0o755))

	return path
}

// TestSpawn_Echo tests the spawn pipe against an echoing process.
func TestSpawn_Echo(t *testing.T) {
	ctx := context.Background()

	p, err := Spawn(ctx, "/bin/ls", WithExePath(fakeR2(t)))
	require.NoError(t, err)

	defer p.Close()

	res, err := p.Cmd(ctx, "ij")
	require.NoError(t, err)
	require.Equal(t, "ij", res)
}

// TestSpawn_TrimsCommand tests that surrounding whitespace never reaches the
// transport.
func TestSpawn_TrimsCommand(t *testing.T) {
	ctx := context.Background()

	p, err := Spawn(ctx, "-", WithExePath(fakeR2(t)))
	require.NoError(t, err)

	defer p.Close()

	res, err := p.Cmd(ctx, "  pd 10 \n")
	require.NoError(t, err)
	require.Equal(t, "pd 10", res)
}

// TestSpawn_NotFound tests spawn with no radare2 anywhere.
func TestSpawn_NotFound(t *testing.T) {
	for _, path := range []string{"/usr/local/bin/radare2", "/usr/local/bin/r2", "/usr/bin/radare2", "/usr/bin/r2"} {
		if _, err := os.Stat(path); err == nil {
			t.Skipf("radare2 installed at %s", path)
		}
	}

	t.Setenv("PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := Spawn(context.Background(), "/bin/ls")

	var notFound *R2NotFoundError
	require.ErrorAs(t, err, &notFound)
}

// TestOpen_NoSession tests Open without inherited session markers.
func TestOpen_NoSession(t *testing.T) {
	t.Setenv("R2PIPE_IN", "")
	t.Setenv("R2PIPE_OUT", "")
	t.Setenv("R2PIPE_PATH", "")

	_, err := Open(context.Background())

	var noSession *NoSessionError
	require.ErrorAs(t, err, &noSession)
}

// TestOpen_MalformedDescriptors tests Open against non-numeric markers.
func TestOpen_MalformedDescriptors(t *testing.T) {
	t.Setenv("R2PIPE_IN", "five")
	t.Setenv("R2PIPE_OUT", "6")
	t.Setenv("R2PIPE_PATH", "")

	_, err := Open(context.Background())

	var noSession *NoSessionError
	require.ErrorAs(t, err, &noSession)
}

// TestInSession_Reporting tests the raw descriptor reporting.
func TestInSession_Reporting(t *testing.T) {
	t.Setenv("R2PIPE_IN", "9")
	t.Setenv("R2PIPE_OUT", "oops")

	in, out, ok := InSession()

	require.False(t, ok)
	require.Equal(t, 9, in)
	require.Equal(t, -1, out)
}

// TestDial_Echo tests the TCP pipe end to end against a loopback server.
func TestDial_Echo(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}

			go func(c net.Conn) {
				defer c.Close()

				buf := make([]byte, 1024)

				n, err := c.Read(buf)
				if err != nil {
					return
				}

				_, _ = c.Write(buf[:n])
			}(conn)
		}
	}()

	ctx := context.Background()

	p, err := Dial(ctx, ln.Addr().String())
	require.NoError(t, err)

	defer p.Close()

	res, err := p.Cmd(ctx, "i")
	require.NoError(t, err)
	require.Equal(t, "i", res)
}

// TestNewHTTP_Cmdj tests the HTTP pipe end to end.
func TestNewHTTP_Cmdj(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cmd/", func(w http.ResponseWriter, r *http.Request) {
		cmd, _ := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), "/cmd/"))
		if cmd == "ij" {
			_, _ = w.Write([]byte(`{"file":"/bin/ls"}`))

			return
		}

		_, _ = w.Write([]byte(cmd))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p := NewHTTP(strings.TrimPrefix(srv.URL, "http://"))

	defer p.Close()

	ctx := context.Background()

	v, err := p.Cmdj(ctx, "ij")
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "/bin/ls", obj["file"])

	res, err := p.Cmd(ctx, "s 0x1040")
	require.NoError(t, err)
	require.Equal(t, "s 0x1040", res)
}

// TestWithPipe_Lifecycle tests the scoped lifecycle helper.
func TestWithPipe_Lifecycle(t *testing.T) {
	ctx := context.Background()

	var captured Pipe

	err := WithPipe(ctx, "/bin/ls", func(p Pipe) error {
		captured = p

		res, err := p.Cmd(ctx, "i")
		require.NoError(t, err)
		require.Equal(t, "i", res)

		return nil
	}, WithExePath(fakeR2(t)))

	require.NoError(t, err)

	// Pipe must be closed once the callback returns.
	_, err = captured.Cmd(ctx, "i")
	require.ErrorIs(t, err, ErrPipeClosed)
}

// TestWithPipe_PropagatesCallbackError tests that the callback's error wins.
func TestWithPipe_PropagatesCallbackError(t *testing.T) {
	wantErr := os.ErrDeadlineExceeded

	err := WithPipe(context.Background(), "-", func(Pipe) error {
		return wantErr
	}, WithExePath(fakeR2(t)))

	require.ErrorIs(t, err, wantErr)
}
