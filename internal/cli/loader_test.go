package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orionlab/fluxconv/internal/photom"
	"github.com/orionlab/fluxconv/internal/unit"
)

func writeCUE(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "systems.cue"), []byte(content), 0o644))
	return dir
}

func TestLoadSystems(t *testing.T) {
	dir := writeCUE(t, `
systems: [
	{
		name: "Vega-I"
		zero_point: {value: 2250.0, unit: "Jy"}
		reference_wavelength: {value: 0.9, unit: "micron"}
	},
]
`)

	reg := photom.NewRegistry()
	require.NoError(t, LoadSystems(dir, reg))

	sys, err := reg.System("Vega-I")
	require.NoError(t, err)
	assert.Equal(t, 2250.0, sys.ZeroPoint.Val)
	assert.Equal(t, "Jy", sys.ZeroPoint.Unit.Symbol)
	assert.Equal(t, 0.9, sys.ReferenceWavelength.Val)

	m, err := reg.FluxToMagnitude("Vega-I", unit.New(2250, unit.Jansky))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m.Val, 1e-12)
}

func TestLoadSystemsWithoutReferenceWavelength(t *testing.T) {
	dir := writeCUE(t, `
systems: [
	{
		name: "flat"
		zero_point: {value: 3631.0, unit: "Jy"}
	},
]
`)

	reg := photom.NewRegistry()
	require.NoError(t, LoadSystems(dir, reg))

	sys, err := reg.System("flat")
	require.NoError(t, err)
	assert.True(t, sys.ReferenceWavelength.IsZero())
}

func TestLoadSystemsDuplicateBuiltin(t *testing.T) {
	dir := writeCUE(t, `
systems: [
	{
		name: "AB"
		zero_point: {value: 3631.0, unit: "Jy"}
	},
]
`)

	err := LoadSystems(dir, photom.Builtin())

	require.Error(t, err)
	assert.True(t, photom.IsDuplicateSystem(err))
}

func TestLoadSystemsUnknownUnit(t *testing.T) {
	dir := writeCUE(t, `
systems: [
	{
		name: "odd"
		zero_point: {value: 1.0, unit: "furlongs"}
	},
]
`)

	err := LoadSystems(dir, photom.NewRegistry())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "odd")
}

func TestLoadSystemsMissingName(t *testing.T) {
	dir := writeCUE(t, `
systems: [
	{
		zero_point: {value: 1.0, unit: "Jy"}
	},
]
`)

	err := LoadSystems(dir, photom.NewRegistry())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadSystemsMissingDir(t *testing.T) {
	err := LoadSystems(filepath.Join(t.TempDir(), "absent"), photom.NewRegistry())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadSystemsEmptyDir(t *testing.T) {
	err := LoadSystems(t.TempDir(), photom.NewRegistry())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CUE files")
}
