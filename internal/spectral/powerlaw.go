package spectral

import (
	"math"

	"github.com/orionlab/fluxconv/internal/unit"
)

// PowerLaw is a spectrum whose flux density per unit frequency scales as
// ν^Index. The multiplicative constant is folded into the normalization
// factor, so an unnormalized model evaluates to ν^Index in its natural unit
// FNU (erg/s/cm²/Hz).
type PowerLaw struct {
	// Index is the dimensionless spectral index.
	Index float64

	// Norm is the normalization factor. 1 for an unnormalized model.
	Norm float64
}

// NewPowerLaw constructs an unnormalized power-law model.
func NewPowerLaw(index float64) PowerLaw {
	return PowerLaw{Index: index, Norm: 1}
}

func (PowerLaw) spectralModel() {}

// NaturalUnit implements Model.
func (PowerLaw) NaturalUnit() unit.Unit {
	return unit.FNU
}

// Evaluate implements Model. Accepts a wavelength or a frequency; a
// wavelength is inverted to a frequency via ν = c/λ.
func (p PowerLaw) Evaluate(at unit.Value) (unit.Value, error) {
	nu, err := at.Convert(unit.Hertz)
	if err != nil {
		return unit.Value{}, err
	}
	if nu.Val <= 0 {
		// Degenerate: ν^index is undefined or singular at ν = 0.
		return unit.Value{}, unit.NewNonPositiveFluxError(nu.Val, nu.Unit)
	}

	return unit.New(p.Norm*math.Pow(nu.Val, p.Index), unit.FNU), nil
}

// NormalizeTo implements Model.
func (p PowerLaw) NormalizeTo(target, at unit.Value) (Model, error) {
	factor, err := normFactor(p, target, at)
	if err != nil {
		return nil, err
	}
	return PowerLaw{Index: p.Index, Norm: p.Norm * factor}, nil
}
