package r2cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/meme/r2pipe/internal/errors"
)

// binaryNames are the executable names searched in PATH, in order.
// Distributions install the binary as either radare2 or r2.
var binaryNames = []string{"radare2", "r2"}

// Config holds configuration for radare2 discovery.
type Config struct {
	// ExePath is an explicit executable path that skips PATH search.
	// If empty, discovery searches PATH and common locations.
	ExePath string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the radare2 binary.
type Discoverer interface {
	// Discover locates the radare2 binary.
	// Returns the path to the binary or an error.
	Discover(ctx context.Context) (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new radare2 discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the radare2 binary.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	d.log.Debug("Discovering radare2 binary")

	// If explicit path provided, use it and only it
	if d.cfg.ExePath != "" {
		d.log.Debug("Using explicit radare2 path", "exe_path", d.cfg.ExePath)

		if _, err := os.Stat(d.cfg.ExePath); err == nil {
			return d.cfg.ExePath, nil
		}

		d.log.Debug("Explicit radare2 path not found", "exe_path", d.cfg.ExePath)

		return "", &errors.R2NotFoundError{SearchedPaths: []string{d.cfg.ExePath}}
	}

	searchedPaths := make([]string, 0, 8)

	// Search in PATH
	for _, name := range binaryNames {
		d.log.Debug("Searching PATH", "name", name)

		if path, err := exec.LookPath(name); err == nil {
			d.log.Debug("Found radare2 in PATH", "path", path)

			return path, nil
		}

		searchedPaths = append(searchedPaths, "$PATH/"+name)
	}

	// Check common locations
	commonPaths := []string{
		"/usr/local/bin/radare2",
		"/usr/local/bin/r2",
		"/usr/bin/radare2",
		"/usr/bin/r2",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin/radare2"))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found radare2 at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("radare2 not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.R2NotFoundError{SearchedPaths: searchedPaths}
}
