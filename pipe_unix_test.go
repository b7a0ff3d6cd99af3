//go:build !windows

package r2pipe

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSpawn_EmptyNameDelegatesToOpen tests that an empty target with a
// session available attaches to the inherited session instead of spawning.
func TestSpawn_EmptyNameDelegatesToOpen(t *testing.T) {
	inR, inW, err := os.Pipe()
	require.NoError(t, err)

	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	t.Cleanup(func() {
		inR.Close()
		inW.Close()
		outR.Close()
		outW.Close()
	})

	t.Setenv("R2PIPE_IN", strconv.Itoa(int(inR.Fd())))
	t.Setenv("R2PIPE_OUT", strconv.Itoa(int(outW.Fd())))

	ctx := context.Background()

	p, err := Spawn(ctx, "")
	require.NoError(t, err)

	defer p.Close()

	go func() {
		buf := make([]byte, 64)
		_, _ = outR.Read(buf)
		_, _ = inW.Write([]byte("embedded\x00"))
	}()

	res, err := p.Cmd(ctx, "i")
	require.NoError(t, err)
	require.Equal(t, "embedded", res)
}
