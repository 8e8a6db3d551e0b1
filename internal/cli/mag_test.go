package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagFaintSourceAB(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMagCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1e-13", "Jy"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "41.43")
	assert.Contains(t, buf.String(), "(AB)")
}

func TestMagCustomSystem(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMagCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1026.69", "Jy", "--system", "I"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "0.85")
	assert.Contains(t, buf.String(), "mag (I)")
}

func TestMagInverse(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMagCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--inverse", "0", "--system", "I", "--to", "Jy"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2250.0000 Jy (I)")
}

func TestMagInverseNotANumber(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMagCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--inverse", "bright"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMagUnknownSystem(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMagCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1", "Jy", "--system", "Johnson-V"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "UNKNOWN_SYSTEM")
}

func TestMagCrossConventionWithAt(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMagCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	// 2.99792458e-26 erg/s/cm2/A at 1 micron is 1e-13 Jy.
	cmd.SetArgs([]string{"2.99792458e-26", "erg/s/cm2/A", "--at", "1micron"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "41.43")
}

func TestMagNeedsUnitWithoutInverse(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMagCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"41.43"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
