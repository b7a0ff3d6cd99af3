package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDescriptors_BothPresent tests discovery with two valid descriptors.
func TestDescriptors_BothPresent(t *testing.T) {
	t.Setenv(EnvIn, "3")
	t.Setenv(EnvOut, "4")

	in, out, ok := Descriptors()

	require.True(t, ok)
	require.Equal(t, 3, in)
	require.Equal(t, 4, out)
}

// TestDescriptors_Absent tests that missing variables resolve to -1.
func TestDescriptors_Absent(t *testing.T) {
	t.Setenv(EnvIn, "")
	t.Setenv(EnvOut, "")

	in, out, ok := Descriptors()

	require.False(t, ok)
	require.Equal(t, -1, in)
	require.Equal(t, -1, out)
}

// TestDescriptors_Malformed tests that non-numeric values resolve to -1.
func TestDescriptors_Malformed(t *testing.T) {
	t.Setenv(EnvIn, "not-a-number")
	t.Setenv(EnvOut, "4")

	in, _, ok := Descriptors()

	require.False(t, ok)
	require.Equal(t, -1, in)
}

// TestDescriptors_Negative tests that negative descriptors never signal a session.
func TestDescriptors_Negative(t *testing.T) {
	t.Setenv(EnvIn, "3")
	t.Setenv(EnvOut, "-2")

	_, out, ok := Descriptors()

	require.False(t, ok)
	require.Equal(t, -2, out)
}

// TestDescriptors_OneMissing tests that a single descriptor is not enough.
func TestDescriptors_OneMissing(t *testing.T) {
	t.Setenv(EnvIn, "5")
	t.Setenv(EnvOut, "")

	_, _, ok := Descriptors()

	require.False(t, ok)
}
