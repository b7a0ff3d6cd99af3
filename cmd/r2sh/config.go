package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// shellConfig is the merged shell configuration: file values first, then
// command-line flags on top.
type shellConfig struct {
	R2Path  string
	R2Args  []string
	Verbose bool
}

type fileConfig struct {
	R2Path  string   `toml:"radare2"`
	R2Args  []string `toml:"args"`
	Verbose bool     `toml:"verbose"`
}

func defaultShellConfig() shellConfig {
	return shellConfig{}
}

// loadShellConfig reads a TOML config file. Only keys actually present in
// the file override defaults.
func loadShellConfig(path string) (shellConfig, error) {
	cfg := defaultShellConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return shellConfig{}, fmt.Errorf("load r2sh config: %w", err)
	}

	if meta.IsDefined("radare2") {
		if p := strings.TrimSpace(raw.R2Path); p != "" {
			cfg.R2Path = p
		}
	}

	if meta.IsDefined("args") {
		cfg.R2Args = raw.R2Args
	}

	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	return cfg, nil
}
