//go:build !windows

package session

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/meme/r2pipe/internal/errors"
)

// Duplicate duplicates the two inherited descriptors and wraps them as files.
// Duplication (rather than adoption) leaves the parent's ownership of the
// originals untouched. Any descriptor acquired before a failure is released.
func Duplicate(in, out int) (r, w *os.File, err error) {
	din, err := unix.Dup(in)
	if err != nil {
		return nil, nil, &errors.ConnectionError{Err: err}
	}

	dout, err := unix.Dup(out)
	if err != nil {
		_ = unix.Close(din)

		return nil, nil, &errors.ConnectionError{Err: err}
	}

	return os.NewFile(uintptr(din), "r2pipe-in"), os.NewFile(uintptr(dout), "r2pipe-out"), nil
}
