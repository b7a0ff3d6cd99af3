package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "r2sh.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadShellConfig_AllKeys tests a fully populated config file.
func TestLoadShellConfig_AllKeys(t *testing.T) {
	path := writeConfig(t, `
radare2 = "/opt/radare2/bin/radare2"
args = ["-e", "bin.cache=true"]
verbose = true
`)

	cfg, err := loadShellConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/radare2/bin/radare2", cfg.R2Path)
	require.Equal(t, []string{"-e", "bin.cache=true"}, cfg.R2Args)
	require.True(t, cfg.Verbose)
}

// TestLoadShellConfig_PartialKeys tests that absent keys keep defaults.
func TestLoadShellConfig_PartialKeys(t *testing.T) {
	path := writeConfig(t, `args = ["-n"]`)

	cfg, err := loadShellConfig(path)
	require.NoError(t, err)
	require.Empty(t, cfg.R2Path)
	require.Equal(t, []string{"-n"}, cfg.R2Args)
	require.False(t, cfg.Verbose)
}

// TestLoadShellConfig_BlankPathIgnored tests that a whitespace radare2 path
// does not override the default.
func TestLoadShellConfig_BlankPathIgnored(t *testing.T) {
	path := writeConfig(t, `radare2 = "   "`)

	cfg, err := loadShellConfig(path)
	require.NoError(t, err)
	require.Empty(t, cfg.R2Path)
}

// TestLoadShellConfig_MissingFile tests the error path.
func TestLoadShellConfig_MissingFile(t *testing.T) {
	_, err := loadShellConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

// TestResolve_FlagsOverrideFile tests flag precedence over file values.
func TestResolve_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
radare2 = "/from/file"
args = ["-n"]
`)

	flags := &shellFlags{
		configPath: path,
		r2Path:     "/from/flag",
	}

	cfg, err := flags.resolve()
	require.NoError(t, err)
	require.Equal(t, "/from/flag", cfg.R2Path)
	require.Equal(t, []string{"-n"}, cfg.R2Args)
}
