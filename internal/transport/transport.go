// Package transport implements the four r2pipe connection modes.
//
// Every mode satisfies the same Transport contract: send one command, get
// back exactly one decoded response. The framing differences between modes
// (leading sentinel byte, trailing newline, NUL delimiter, read-to-EOF) are
// contained here; callers only ever see decoded text or typed errors.
package transport

import "context"

// Transport is implemented by each connection mode.
//
// A Transport is not safe for concurrent use; the owner must serialize
// calls. Close is best-effort and may be called more than once.
type Transport interface {
	// Cmd transmits a command and returns the decoded response body with
	// the transport framing stripped.
	Cmd(ctx context.Context, cmd string) (string, error)

	// Cmdj runs Cmd and parses the response as JSON.
	Cmdj(ctx context.Context, cmd string) (any, error)

	// Close releases the transport's resources. For the process transport
	// this asks the child to quit; stateless transports are a no-op.
	Close() error
}

// Compile-time verification that all connection modes implement Transport.
var (
	_ Transport = (*Spawn)(nil)
	_ Transport = (*Inherited)(nil)
	_ Transport = (*TCP)(nil)
	_ Transport = (*HTTP)(nil)
)
