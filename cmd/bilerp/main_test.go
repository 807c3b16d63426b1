package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/bilerp/resample"
)

func TestRootCmdArgCount(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	for _, args := range [][]string{
		{`in.png`, `2`},
		{`in.png`, `2`, `out.png`, `extra`},
		{},
	} {
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		require.Error(t, err, `%q`, args)
		assert.Contains(t, err.Error(), `accepts 3 arg(s)`)
	}
}

func TestResizeFuncScaleBeforeIO(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, `out.png`)
	for _, scale := range []string{`abc`, `0`, `-1.5`} {
		// the input does not exist, the scale error must come first
		err := resizeFunc(rootCmd, []string{filepath.Join(dir, `missing.png`), scale, dst})()
		assert.ErrorIs(t, err, resample.ErrInvalidScale, scale)
		_, errStat := os.Stat(dst)
		assert.True(t, os.IsNotExist(errStat))
	}

	err := resizeFunc(rootCmd, []string{`in.png`, `2`})()
	assert.Error(t, err)
}
