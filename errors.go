package r2pipe

import "github.com/meme/r2pipe/internal/errors"

// Re-export error types from internal package

// NoSessionError indicates no inherited radare2 session is available.
type NoSessionError = errors.NoSessionError

// ArgumentMismatchError indicates mismatched names/options list lengths.
type ArgumentMismatchError = errors.ArgumentMismatchError

// DecodeError indicates a response body was not valid UTF-8.
type DecodeError = errors.DecodeError

// ParseError indicates a response could not be parsed as structured data.
type ParseError = errors.ParseError

// SpawnError indicates the radare2 process could not be started.
type SpawnError = errors.SpawnError

// ConnectionError indicates a transport-level connection failure.
type ConnectionError = errors.ConnectionError

// R2NotFoundError indicates the radare2 binary was not found.
type R2NotFoundError = errors.R2NotFoundError

// R2PipeError is the base interface for all errors produced by this library.
type R2PipeError = errors.R2PipeError

// Re-export sentinel errors from internal package.
var (
	// ErrEmptyResponse indicates the tool returned zero bytes where a
	// response body was expected.
	ErrEmptyResponse = errors.ErrEmptyResponse

	// ErrPipeClosed indicates the pipe has been closed and cannot be reused.
	ErrPipeClosed = errors.ErrPipeClosed

	// ErrWorkerClosed indicates the worker's background goroutine has terminated.
	ErrWorkerClosed = errors.ErrWorkerClosed

	// ErrNoReply indicates a non-blocking receive found no reply queued.
	ErrNoReply = errors.ErrNoReply
)
