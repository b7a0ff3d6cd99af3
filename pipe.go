package r2pipe

import (
	"context"
	"strings"

	"github.com/meme/r2pipe/internal/r2cli"
	"github.com/meme/r2pipe/internal/session"
	"github.com/meme/r2pipe/internal/transport"
)

// Pipe is the unified handle through which commands are sent and responses
// received, regardless of connection mode. Exactly one mode is live per
// value, fixed at construction.
//
// A Pipe is not safe for concurrent use. For concurrent access to several
// radare2 instances, see Threads.
type Pipe interface {
	// Cmd transmits a command and returns the decoded response body.
	Cmd(ctx context.Context, cmd string) (string, error)

	// Cmdj runs Cmd and parses the response as JSON. Fails with ParseError
	// when the response is empty or not valid JSON.
	Cmdj(ctx context.Context, cmd string) (any, error)

	// Close releases the pipe's resources. Best-effort: failures are
	// discarded.
	Close() error
}

// pipe adapts a transport to the public Pipe surface. Commands are
// whitespace-trimmed once here so every mode sees the same bytes.
type pipe struct {
	t transport.Transport
}

func (p *pipe) Cmd(ctx context.Context, cmd string) (string, error) {
	return p.t.Cmd(ctx, strings.TrimSpace(cmd))
}

func (p *pipe) Cmdj(ctx context.Context, cmd string) (any, error) {
	return p.t.Cmdj(ctx, strings.TrimSpace(cmd))
}

func (p *pipe) Close() error {
	return p.t.Close()
}

// InSession reports whether the environment announces an inherited radare2
// session, returning the raw descriptor numbers (-1 when absent or
// malformed).
func InSession() (in, out int, ok bool) {
	return session.Descriptors()
}

// Open attaches to the session inherited from a parent radare2 process.
// Returns NoSessionError when the environment does not announce one.
func Open(ctx context.Context, opts ...Option) (Pipe, error) {
	o := applyOptions(opts)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := transport.NewInherited(o.logger)
	if err != nil {
		return nil, err
	}

	return &pipe{t: t}, nil
}

// Spawn launches a radare2 process against the target name and connects to
// it over stdio. An empty name with an inherited session available delegates
// to Open, so one call-site works whether or not the caller is embedded.
//
// The child process inherits the lifetime of ctx.
func Spawn(ctx context.Context, name string, opts ...Option) (Pipe, error) {
	if name == "" {
		if _, _, ok := session.Descriptors(); ok {
			return Open(ctx, opts...)
		}
	}

	o := applyOptions(opts)

	exePath, err := r2cli.NewDiscoverer(&r2cli.Config{
		ExePath: o.spawn.ExePath,
		Logger:  o.logger,
	}).Discover(ctx)
	if err != nil {
		return nil, err
	}

	t, err := transport.NewSpawn(ctx, o.logger, exePath, r2cli.BuildArgs(o.spawn.Args, name))
	if err != nil {
		return nil, err
	}

	return &pipe{t: t}, nil
}

// Dial connects to a radare2 TCP command server. The peer address is
// resolved once; every command then performs its own self-contained
// exchange against it.
func Dial(ctx context.Context, addr string, opts ...Option) (Pipe, error) {
	o := applyOptions(opts)

	t, err := transport.NewTCP(ctx, o.logger, addr)
	if err != nil {
		return nil, err
	}

	return &pipe{t: t}, nil
}

// NewHTTP builds a pipe over a radare2 HTTP command server at host
// ("addr:port"). No connection is made until the first command.
func NewHTTP(host string, opts ...Option) Pipe {
	o := applyOptions(opts)

	return &pipe{t: transport.NewHTTP(o.logger, host)}
}
