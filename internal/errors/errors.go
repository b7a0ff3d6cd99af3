package errors

import (
	"errors"
	"fmt"
)

// R2PipeError is the base interface for all errors produced by this library.
type R2PipeError interface {
	error
	IsR2PipeError() bool
}

// Compile-time verification that all error types implement R2PipeError.
var (
	_ R2PipeError = (*NoSessionError)(nil)
	_ R2PipeError = (*ArgumentMismatchError)(nil)
	_ R2PipeError = (*DecodeError)(nil)
	_ R2PipeError = (*ParseError)(nil)
	_ R2PipeError = (*SpawnError)(nil)
	_ R2PipeError = (*ConnectionError)(nil)
	_ R2PipeError = (*R2NotFoundError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrEmptyResponse indicates the tool returned zero bytes where a
	// response body was expected.
	ErrEmptyResponse = errors.New("empty response")

	// ErrPipeClosed indicates the pipe has been closed and cannot be reused.
	ErrPipeClosed = errors.New("pipe closed")

	// ErrWorkerClosed indicates the worker's background goroutine has
	// terminated and its channels are gone.
	ErrWorkerClosed = errors.New("worker closed")

	// ErrNoReply indicates a non-blocking receive found no reply queued.
	ErrNoReply = errors.New("no reply available")
)

// NoSessionError indicates no inherited radare2 session is available:
// R2PIPE_IN and R2PIPE_OUT are not both present as non-negative integers.
type NoSessionError struct {
	In  int
	Out int
}

func (e *NoSessionError) Error() string {
	return fmt.Sprintf("no r2pipe session (R2PIPE_IN=%d R2PIPE_OUT=%d)", e.In, e.Out)
}

// IsR2PipeError implements R2PipeError.
func (e *NoSessionError) IsR2PipeError() bool { return true }

// ArgumentMismatchError indicates a worker pool was requested with
// mismatched names/options list lengths.
type ArgumentMismatchError struct {
	Names int
	Opts  int
}

func (e *ArgumentMismatchError) Error() string {
	return fmt.Sprintf("argument mismatch: %d names but %d options", e.Names, e.Opts)
}

// IsR2PipeError implements R2PipeError.
func (e *ArgumentMismatchError) IsR2PipeError() bool { return true }

// DecodeError indicates a response body was not valid UTF-8.
// The raw bytes that failed to decode are preserved.
type DecodeError struct {
	Raw []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response is not valid UTF-8 (%d bytes)", len(e.Raw))
}

// IsR2PipeError implements R2PipeError.
func (e *DecodeError) IsR2PipeError() bool { return true }

// ParseError indicates a response could not be parsed as structured data.
// This includes the case of an empty response string.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsR2PipeError implements R2PipeError.
func (e *ParseError) IsR2PipeError() bool { return true }

// SpawnError indicates the radare2 process could not be started.
type SpawnError struct {
	ExePath string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %s: %v", e.ExePath, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsR2PipeError implements R2PipeError.
func (e *SpawnError) IsR2PipeError() bool { return true }

// ConnectionError indicates a transport-level connection failure
// (socket dial, descriptor duplication, HTTP request).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsR2PipeError implements R2PipeError.
func (e *ConnectionError) IsR2PipeError() bool { return true }

// R2NotFoundError indicates the radare2 binary was not found.
type R2NotFoundError struct {
	SearchedPaths []string
}

func (e *R2NotFoundError) Error() string {
	return fmt.Sprintf("radare2 not found in: %v", e.SearchedPaths)
}

// IsR2PipeError implements R2PipeError.
func (e *R2NotFoundError) IsR2PipeError() bool { return true }
