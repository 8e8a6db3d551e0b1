package run

import (
	"fmt"
	"strings"

	"github.com/orionlab/fluxconv/internal/photom"
	"github.com/orionlab/fluxconv/internal/spectral"
	"github.com/orionlab/fluxconv/internal/unit"
)

// Result is the outcome of executing a scenario.
type Result struct {
	Scenario string `json:"scenario"`

	// Input echoes the observed flux point.
	Input string `json:"input"`

	// Flux is the output flux density.
	Flux ResultQuantity `json:"flux"`

	// Magnitude is set when the scenario names a magnitude system.
	Magnitude *ResultQuantity `json:"magnitude,omitempty"`

	// System is the magnitude system Magnitude is on.
	System string `json:"system,omitempty"`
}

// ResultQuantity is a number-with-unit in a result.
type ResultQuantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Render formats the result as stable, low-precision text. Flux values are
// rounded to four significant digits and magnitudes to two decimals, so the
// output is insensitive to last-bit float noise and safe to golden-test.
func (r *Result) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	fmt.Fprintf(&b, "input: %s\n", r.Input)
	fmt.Fprintf(&b, "flux: %.3e %s\n", r.Flux.Value, r.Flux.Unit)
	if r.Magnitude != nil {
		fmt.Fprintf(&b, "magnitude: %.2f %s (%s)\n", r.Magnitude.Value, r.Magnitude.Unit, r.System)
	}
	return b.String()
}

// Execute runs a scenario against a magnitude-system registry.
//
// The control flow is the library's intended composition: construct the
// input value, optionally fit a spectral model through it, evaluate the
// model at the output wavelength, convert to the requested unit, and
// optionally take the magnitude.
func Execute(s *Scenario, reg *photom.Registry) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	inFluxUnit, err := unit.ParseUnit(s.Input.Flux.Unit)
	if err != nil {
		return nil, err
	}
	inWaveUnit, err := unit.ParseUnit(s.Input.Wavelength.Unit)
	if err != nil {
		return nil, err
	}
	inFlux := unit.New(s.Input.Flux.Value, inFluxUnit)
	inWave := unit.New(s.Input.Wavelength.Value, inWaveUnit)

	outWave := inWave
	if s.Output.Wavelength != nil {
		outWaveUnit, err := unit.ParseUnit(s.Output.Wavelength.Unit)
		if err != nil {
			return nil, err
		}
		outWave = unit.New(s.Output.Wavelength.Value, outWaveUnit)
	}

	outUnit := inFluxUnit
	if s.Output.Unit != "" {
		outUnit, err = unit.ParseUnit(s.Output.Unit)
		if err != nil {
			return nil, err
		}
	}

	flux := inFlux
	if s.Model != nil {
		model, err := buildModel(s.Model)
		if err != nil {
			return nil, err
		}
		fitted, err := model.NormalizeTo(inFlux, inWave)
		if err != nil {
			return nil, fmt.Errorf("fit model to input: %w", err)
		}
		flux, err = fitted.Evaluate(outWave)
		if err != nil {
			return nil, fmt.Errorf("evaluate model: %w", err)
		}
	}

	outFlux, err := flux.ConvertAt(outUnit, outWave)
	if err != nil {
		return nil, fmt.Errorf("convert output: %w", err)
	}

	result := &Result{
		Scenario: s.Name,
		Input:    fmt.Sprintf("%s at %s", inFlux, inWave),
		Flux:     ResultQuantity{Value: outFlux.Val, Unit: outFlux.Unit.Symbol},
	}

	if s.Output.System != "" {
		mag, err := magnitudeAt(reg, s.Output.System, outFlux, outWave)
		if err != nil {
			return nil, err
		}
		result.Magnitude = &ResultQuantity{Value: mag.Val, Unit: mag.Unit.Symbol}
		result.System = s.Output.System
	}

	return result, nil
}

// buildModel constructs the spectral model a scenario names.
func buildModel(spec *ModelSpec) (spectral.Model, error) {
	switch spec.Type {
	case "blackbody":
		return spectral.NewBlackbody(spec.Temperature)
	case "powerlaw":
		return spectral.NewPowerLaw(spec.Index), nil
	default:
		return nil, fmt.Errorf("unknown model type %q", spec.Type)
	}
}

// magnitudeAt converts a flux to a magnitude, supplying the output
// wavelength as context when the system's zero point lives in a different
// flux convention and the system has no reference wavelength of its own.
func magnitudeAt(reg *photom.Registry, system string, flux, at unit.Value) (unit.Value, error) {
	mag, err := reg.FluxToMagnitude(system, flux)
	if err == nil || !unit.IsMissingContext(err) {
		return mag, err
	}

	// Retry with the evaluation wavelength as the conversion context.
	sys, serr := reg.System(system)
	if serr != nil {
		return unit.Value{}, serr
	}
	matched, cerr := flux.ConvertAt(sys.ZeroPoint.Unit, at)
	if cerr != nil {
		return unit.Value{}, cerr
	}
	return matched.ToMagnitude(sys.ZeroPoint)
}
