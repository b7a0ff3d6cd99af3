package r2pipe

import "log/slog"

// SpawnOptions configures how a radare2 process is launched. A single value
// may be shared between spawns; it is cloned per use and never mutated.
type SpawnOptions struct {
	// ExePath is an explicit path to the radare2 binary. If empty, the
	// binary is resolved via PATH and common install directories.
	ExePath string

	// Args are extra command-line arguments inserted between the pipe flag
	// and the target.
	Args []string
}

// clone copies the options so a shared value can back multiple spawns.
func (o *SpawnOptions) clone() *SpawnOptions {
	if o == nil {
		return &SpawnOptions{}
	}

	c := &SpawnOptions{ExePath: o.ExePath}
	c.Args = append(c.Args, o.Args...)

	return c
}

// Option configures pipe construction using the functional options pattern.
type Option func(*pipeOptions)

type pipeOptions struct {
	logger *slog.Logger
	spawn  SpawnOptions
}

// applyOptions applies functional options over silent defaults.
func applyOptions(opts []Option) *pipeOptions {
	options := &pipeOptions{logger: NopLogger()}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *pipeOptions) {
		o.logger = logger
	}
}

// WithExePath sets the explicit path to the radare2 binary.
// If not set, the binary will be searched in PATH.
func WithExePath(path string) Option {
	return func(o *pipeOptions) {
		o.spawn.ExePath = path
	}
}

// WithArgs provides extra command-line arguments for the radare2 process.
func WithArgs(args ...string) Option {
	return func(o *pipeOptions) {
		o.spawn.Args = args
	}
}

// WithSpawnOptions applies a whole SpawnOptions value at once. Useful when
// the same configuration backs several spawns.
func WithSpawnOptions(opts *SpawnOptions) Option {
	return func(o *pipeOptions) {
		c := opts.clone()
		o.spawn = *c
	}
}
