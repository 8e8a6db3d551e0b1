package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCommand(t *testing.T) {
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	require.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "convert")
}

func TestConvertSameKind(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1e-13", "Jy", "--to", "W/m2/Hz"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1e-39 W/m2/Hz")
}

func TestConvertWavelengthToFrequency(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"0.5", "micron", "--to", "THz"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "599.585 THz")
}

func TestConvertCrossConventionWithContext(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1", "Jy", "--to", "erg/s/cm2/A", "--at", "1micron"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2.99792e-13 erg/s/cm2/A")
	assert.Contains(t, buf.String(), "(at 1micron)")
}

func TestConvertMissingContext(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1", "Jy", "--to", "photlam"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "MISSING_CONTEXT")
}

func TestConvertUnknownUnit(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1", "parsec", "--to", "Jy"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "UNKNOWN_UNIT")
}

func TestConvertRequiresTo(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1", "Jy"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestConvertJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"2", "Jy", "--to", "mJy"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2 Jy", data["input"])
	assert.InDelta(t, 2000.0, data["value"].(float64), 1e-9)
	assert.Equal(t, "mJy", data["unit"])
}
