// Package r2pipe provides a Go client for scripting radare2.
//
// A Pipe sends textual commands to a running radare2 instance and returns
// the response as text or parsed JSON. Four connection modes are supported
// behind the same interface: a freshly spawned radare2 child process, a
// session inherited from a parent radare2 (when your program runs inside
// r2), a TCP command server, and an HTTP command server.
//
// # Basic Usage
//
// Spawn a radare2 process against a target binary:
//
//	ctx := context.Background()
//	pipe, err := r2pipe.Spawn(ctx, "/bin/ls")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pipe.Close()
//
//	info, err := pipe.Cmd(ctx, "i")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info)
//
// Structured commands (those ending in "j") parse cleanly with Cmdj:
//
//	v, err := pipe.Cmdj(ctx, "ij")
//
// # Running Inside radare2
//
// When your program is launched by radare2 itself (for example via "#!pipe"),
// the parent exports an inherited session. Open attaches to it:
//
//	pipe, err := r2pipe.Open(ctx)
//
// Spawn with an empty target name falls back to Open when a session is
// available, so the same call-site works embedded or standalone.
//
// # Remote Servers
//
// Dial connects to a radare2 TCP server and NewHTTP to an HTTP server:
//
//	pipe, err := r2pipe.Dial(ctx, "127.0.0.1:9080")
//	pipe := r2pipe.NewHTTP("127.0.0.1:9090")
//
// # Worker Pools
//
// Threads drives several independent radare2 instances concurrently, one
// goroutine and one private Pipe per target:
//
//	workers, err := r2pipe.Threads(
//	    []string{"/bin/ls", "/bin/cat"},
//	    []*r2pipe.SpawnOptions{nil, nil},
//	    nil,
//	)
//	for _, w := range workers {
//	    _ = w.Send("ij")
//	}
//	for _, w := range workers {
//	    res, _ := w.Recv(true)
//	    fmt.Println(w.ID, res)
//	}
//
// # Logging
//
// Constructors accept WithLogger for slog-based operation tracking; the
// default is silent:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	pipe, err := r2pipe.Spawn(ctx, "/bin/ls", r2pipe.WithLogger(logger))
//
// # Error Handling
//
// Failures carry typed errors so callers can tell "the tool returned no
// data" (ErrEmptyResponse, ParseError) from "the data is not structured"
// (ParseError) from connection-level failures (ConnectionError, SpawnError):
//
//	if _, err := pipe.Cmdj(ctx, "ij"); err != nil {
//	    var parseErr *r2pipe.ParseError
//	    if errors.As(err, &parseErr) {
//	        log.Printf("not JSON: %q", parseErr.Raw)
//	    }
//	}
//
// # Requirements
//
// Spawning requires radare2 to be installed; the binary is located via the
// WithExePath option, the system PATH, or common install directories.
package r2pipe
