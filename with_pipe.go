package r2pipe

import (
	"context"
	"fmt"
)

// WithPipe manages pipe lifecycle with automatic cleanup.
//
// This helper spawns a radare2 process for the target name (or attaches to
// an inherited session when name is empty and one is available), executes
// the callback function, and ensures the pipe is closed when done.
//
// If the callback returns an error, it is returned to the caller. Close
// failures are best-effort and discarded.
//
// Example usage:
//
//	err := r2pipe.WithPipe(ctx, "/bin/ls", func(p r2pipe.Pipe) error {
//	    info, err := p.Cmd(ctx, "i")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(info)
//	    return nil
//	})
func WithPipe(ctx context.Context, name string, fn func(Pipe) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	p, err := Spawn(ctx, name, opts...)
	if err != nil {
		return fmt.Errorf("failed to open pipe: %w", err)
	}

	defer func() {
		_ = p.Close()
	}()

	return fn(p)
}
