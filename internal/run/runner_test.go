package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orionlab/fluxconv/internal/photom"
)

func TestExecutePlainConversion(t *testing.T) {
	s := &Scenario{
		Name: "jy-to-watt",
		Input: InputSpec{
			Flux:       Quantity{Value: 1.0, Unit: "Jy"},
			Wavelength: Quantity{Value: 0.55, Unit: "micron"},
		},
		Output: OutputSpec{Unit: "W/m2/Hz"},
	}

	res, err := Execute(s, photom.Builtin())
	require.NoError(t, err)

	assert.InEpsilon(t, 1e-26, res.Flux.Value, 1e-12)
	assert.Equal(t, "W/m2/Hz", res.Flux.Unit)
	assert.Nil(t, res.Magnitude)
}

func TestExecuteMagnitudeOnly(t *testing.T) {
	s := &Scenario{
		Name: "ab",
		Input: InputSpec{
			Flux:       Quantity{Value: 1e-13, Unit: "Jy"},
			Wavelength: Quantity{Value: 1.0, Unit: "micron"},
		},
		Output: OutputSpec{System: "AB"},
	}

	res, err := Execute(s, photom.Builtin())
	require.NoError(t, err)

	require.NotNil(t, res.Magnitude)
	assert.InDelta(t, 41.43, res.Magnitude.Value, 0.01)
	assert.Equal(t, "AB", res.System)
}

func TestExecutePowerLawScenario(t *testing.T) {
	s := &Scenario{
		Name: "powerlaw",
		Input: InputSpec{
			Flux:       Quantity{Value: 1e-23, Unit: "W/m2/Hz"},
			Wavelength: Quantity{Value: 1.0, Unit: "micron"},
		},
		Model: &ModelSpec{Type: "powerlaw", Index: 0.25},
		Output: OutputSpec{
			Wavelength: &Quantity{Value: 0.9, Unit: "micron"},
			Unit:       "Jy",
			System:     "I",
		},
	}

	res, err := Execute(s, photom.Builtin())
	require.NoError(t, err)

	assert.InEpsilon(t, 1026.69, res.Flux.Value, 1e-4)
	require.NotNil(t, res.Magnitude)
	assert.InDelta(t, 0.85, res.Magnitude.Value, 0.01)
}

func TestExecuteBlackbodyScenario(t *testing.T) {
	s := &Scenario{
		Name: "blackbody",
		Input: InputSpec{
			Flux:       Quantity{Value: 1.0, Unit: "photlam"},
			Wavelength: Quantity{Value: 0.5, Unit: "micron"},
		},
		Model: &ModelSpec{Type: "blackbody", Temperature: 5500},
		Output: OutputSpec{
			Wavelength: &Quantity{Value: 0.6, Unit: "micron"},
			Unit:       "erg/s/cm2/Hz",
		},
	}

	res, err := Execute(s, photom.Builtin())
	require.NoError(t, err)

	assert.InEpsilon(t, 4.62e-23, res.Flux.Value, 0.01)
}

func TestExecuteMagnitudeUsesOutputWavelengthAsContext(t *testing.T) {
	// AB has no reference wavelength; a per-wavelength output flux still
	// gets a magnitude because the output wavelength supplies the context.
	s := &Scenario{
		Name: "flam-to-ab",
		Input: InputSpec{
			Flux:       Quantity{Value: 1e-13, Unit: "Jy"},
			Wavelength: Quantity{Value: 1.0, Unit: "micron"},
		},
		Output: OutputSpec{Unit: "erg/s/cm2/A", System: "AB"},
	}

	res, err := Execute(s, photom.Builtin())
	require.NoError(t, err)

	require.NotNil(t, res.Magnitude)
	assert.InDelta(t, 41.43, res.Magnitude.Value, 0.01)
}

func TestValidateErrors(t *testing.T) {
	base := InputSpec{
		Flux:       Quantity{Value: 1.0, Unit: "Jy"},
		Wavelength: Quantity{Value: 1.0, Unit: "micron"},
	}

	tests := []struct {
		name string
		s    Scenario
	}{
		{"missing-name", Scenario{Input: base}},
		{"missing-flux-unit", Scenario{Name: "x", Input: InputSpec{Wavelength: base.Wavelength}}},
		{"unknown-model", Scenario{Name: "x", Input: base, Model: &ModelSpec{Type: "gaussian"}}},
		{"cold-blackbody", Scenario{Name: "x", Input: base, Model: &ModelSpec{Type: "blackbody"}}},
		{"extrapolation-without-model", Scenario{
			Name:   "x",
			Input:  base,
			Output: OutputSpec{Wavelength: &Quantity{Value: 0.9, Unit: "micron"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.s.Validate())
		})
	}
}

func TestExecuteUnknownUnit(t *testing.T) {
	s := &Scenario{
		Name: "bad-unit",
		Input: InputSpec{
			Flux:       Quantity{Value: 1.0, Unit: "parsecs"},
			Wavelength: Quantity{Value: 1.0, Unit: "micron"},
		},
	}

	_, err := Execute(s, photom.Builtin())
	assert.Error(t, err)
}

func TestExecuteUnknownSystem(t *testing.T) {
	s := &Scenario{
		Name: "bad-system",
		Input: InputSpec{
			Flux:       Quantity{Value: 1.0, Unit: "Jy"},
			Wavelength: Quantity{Value: 1.0, Unit: "micron"},
		},
		Output: OutputSpec{System: "Vega"},
	}

	_, err := Execute(s, photom.Builtin())
	require.Error(t, err)
	assert.True(t, photom.IsUnknownSystem(err))
}
