package spectral

import (
	"fmt"
	"math"

	"github.com/orionlab/fluxconv/internal/unit"
)

// Blackbody is the emergent surface flux of an ideal thermal radiator at a
// fixed temperature, per Planck's law. Natural unit is PHOTLAM
// (photon/s/cm²/Å), the unit the photon-counting form of the law produces
// directly.
type Blackbody struct {
	// Temperature in Kelvin.
	Temperature float64

	// Norm is the dimensionless normalization factor. 1 for an
	// unnormalized model.
	Norm float64
}

// NewBlackbody constructs an unnormalized blackbody model.
func NewBlackbody(temperature float64) (Blackbody, error) {
	if temperature <= 0 {
		return Blackbody{}, fmt.Errorf("blackbody temperature must be positive, got %g K", temperature)
	}
	return Blackbody{Temperature: temperature, Norm: 1}, nil
}

func (Blackbody) spectralModel() {}

// NaturalUnit implements Model.
func (Blackbody) NaturalUnit() unit.Unit {
	return unit.PHOTLAM
}

// Evaluate implements Model. Accepts a wavelength or a frequency.
//
// The photon form of Planck's law in cgs, integrated over the outward
// hemisphere, is N_λ = 2πc/λ⁴ / (exp(hc/λkT) − 1) photons/s/cm²/cm,
// rescaled to a per-Å interval.
func (b Blackbody) Evaluate(at unit.Value) (unit.Value, error) {
	lam, err := at.Convert(unit.Angstrom)
	if err != nil {
		return unit.Value{}, err
	}

	x := unit.HCOverK / (lam.Val * b.Temperature)
	denom := math.Expm1(x)

	lamCm := lam.Val * 1e-8
	cCm := unit.SpeedOfLight * 1e-8
	perCm := 2 * math.Pi * cCm / (lamCm * lamCm * lamCm * lamCm) / denom
	photlam := perCm * 1e-8

	return unit.New(b.Norm*photlam, unit.PHOTLAM), nil
}

// NormalizeTo implements Model.
func (b Blackbody) NormalizeTo(target, at unit.Value) (Model, error) {
	factor, err := normFactor(b, target, at)
	if err != nil {
		return nil, err
	}
	return Blackbody{Temperature: b.Temperature, Norm: b.Norm * factor}, nil
}
