package photom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orionlab/fluxconv/internal/unit"
)

func TestBuiltinSystems(t *testing.T) {
	r := Builtin()

	assert.Equal(t, []string{"AB", "I", "ST"}, r.Names())

	sys, err := r.System("I")
	require.NoError(t, err)
	assert.InDelta(t, 2250.0, sys.ZeroPoint.Val, 1e-12)
	assert.Equal(t, unit.Jansky, sys.ZeroPoint.Unit)
	assert.InDelta(t, 0.90, sys.ReferenceWavelength.Val, 1e-12)
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	zp := unit.New(2250, unit.Jansky)

	require.NoError(t, r.Register("X", zp, unit.Value{}))
	err := r.Register("X", zp, unit.Value{})

	require.Error(t, err)
	assert.True(t, IsDuplicateSystem(err))
}

func TestRegisterRejectsNonFluxZeroPoint(t *testing.T) {
	r := NewRegistry()

	err := r.Register("bad", unit.New(1.0, unit.Micron), unit.Value{})
	assert.True(t, unit.IsIncompatibleUnits(err))

	err = r.Register("bad", unit.New(-1.0, unit.Jansky), unit.Value{})
	assert.True(t, unit.IsNonPositiveFlux(err))
}

func TestUnknownSystem(t *testing.T) {
	r := Builtin()

	_, err := r.FluxToMagnitude("Vega", unit.New(1.0, unit.Jansky))
	assert.True(t, IsUnknownSystem(err))

	_, err = r.MagnitudeToFlux("Vega", unit.New(0.0, unit.Mag))
	assert.True(t, IsUnknownSystem(err))
}

func TestABMagnitudeScenario(t *testing.T) {
	// 1e-13 Jy is AB magnitude 41.43 under the legacy zero point.
	r := Builtin()

	m, err := r.FluxToMagnitude("AB", unit.New(1e-13, unit.Jansky))
	require.NoError(t, err)

	assert.InDelta(t, 41.43, m.Val, 0.01)
}

func TestISystemMagnitude(t *testing.T) {
	r := Builtin()

	// A source at the zero-point flux is magnitude 0.
	m, err := r.FluxToMagnitude("I", unit.New(2250, unit.Jansky))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m.Val, 1e-12)

	// 1026.7 Jy at the I band is magnitude 0.85.
	m, err = r.FluxToMagnitude("I", unit.New(1026.7, unit.Jansky))
	require.NoError(t, err)
	assert.InDelta(t, 0.85, m.Val, 0.01)
}

func TestMagnitudeRoundTrip(t *testing.T) {
	r := Builtin()

	for _, jy := range []float64{1e-13, 3.5, 2250, 9.9e6} {
		m, err := r.FluxToMagnitude("AB", unit.New(jy, unit.Jansky))
		require.NoError(t, err)

		back, err := r.MagnitudeToFlux("AB", m)
		require.NoError(t, err)
		inJy, err := back.Convert(unit.Jansky)
		require.NoError(t, err)

		assert.InEpsilon(t, jy, inJy.Val, 1e-9)
	}
}

func TestFluxToMagnitudeCrossConvention(t *testing.T) {
	// A per-wavelength flux against the I system (per-frequency zero
	// point) converts through the system's reference wavelength.
	r := Builtin()

	jy := unit.New(2250.0, unit.Jansky)
	flam, err := jy.ConvertAt(unit.FLAM, unit.New(0.90, unit.Micron))
	require.NoError(t, err)

	m, err := r.FluxToMagnitude("I", flam)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m.Val, 1e-9)
}

func TestFluxToMagnitudeCrossConventionNeedsReference(t *testing.T) {
	// AB has no reference wavelength, so a per-wavelength flux cannot be
	// converted into its per-frequency zero point.
	r := Builtin()

	_, err := r.FluxToMagnitude("AB", unit.New(1e-9, unit.FLAM))

	require.Error(t, err)
	assert.True(t, unit.IsMissingContext(err))
}

func TestMagnitudeToFluxRejectsNonMagnitude(t *testing.T) {
	r := Builtin()

	_, err := r.MagnitudeToFlux("AB", unit.New(1.0, unit.Jansky))

	require.Error(t, err)
	assert.True(t, unit.IsIncompatibleUnits(err))
}
