// Package session discovers inherited r2pipe sessions.
//
// When a script runs inside radare2, the parent process exports R2PIPE_IN
// and R2PIPE_OUT holding the file descriptor numbers of an already-open
// command channel. On Windows, where raw descriptor numbers cannot cross
// the process boundary usefully, R2PIPE_PATH names a duplex named pipe
// instead.
package session

import (
	"os"
	"strconv"
)

// Environment variables set by a parent radare2 process.
const (
	EnvIn   = "R2PIPE_IN"
	EnvOut  = "R2PIPE_OUT"
	EnvPath = "R2PIPE_PATH"
)

// Descriptors reads the inherited session descriptors from the environment.
// Absent or malformed values resolve to -1; ok is true only when both
// descriptors are present and non-negative.
func Descriptors() (in, out int, ok bool) {
	in = getenvInt(EnvIn)
	out = getenvInt(EnvOut)

	return in, out, in >= 0 && out >= 0
}

func getenvInt(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return -1
	}

	return v
}
