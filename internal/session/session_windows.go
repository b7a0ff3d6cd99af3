//go:build windows

package session

import "os"

// PipePath returns the named-pipe path announced by the parent process.
func PipePath() (string, bool) {
	v := os.Getenv(EnvPath)
	if v == "" {
		return "", false
	}

	return `\\.\pipe\` + v, true
}

// OpenNamedPipe opens the parent's duplex named pipe for reading and writing.
func OpenNamedPipe(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR, 0)
}
