package spectral

import (
	"github.com/orionlab/fluxconv/internal/unit"
)

// Model is a sealed interface over spectral shapes. Only Blackbody and
// PowerLaw implement it; new shapes are added here as new variants, not as
// external subclasses.
type Model interface {
	// Evaluate returns the flux density the model implies at the given
	// wavelength or frequency, in the model's natural unit, scaled by the
	// model's normalization factor. Pure function of the input.
	Evaluate(at unit.Value) (unit.Value, error)

	// NormalizeTo returns a new model, identical in shape, whose
	// evaluation at `at` equals target. The target flux is converted into
	// the model's natural unit first, using `at` as the photon-energy
	// context.
	NormalizeTo(target, at unit.Value) (Model, error)

	// NaturalUnit is the flux unit Evaluate reports in.
	NaturalUnit() unit.Unit

	spectralModel() // Sealed - only these types implement it
}

// normFactor computes the multiplier that rescales m so that it evaluates to
// target at `at`. Since Evaluate already includes the current normalization,
// the factor composes with it.
func normFactor(m Model, target, at unit.Value) (float64, error) {
	base, err := m.Evaluate(at)
	if err != nil {
		return 0, err
	}
	if base.Val <= 0 {
		return 0, unit.NewNonPositiveFluxError(base.Val, base.Unit)
	}

	want, err := target.ConvertAt(m.NaturalUnit(), at)
	if err != nil {
		return 0, err
	}
	if want.Val <= 0 {
		return 0, unit.NewNonPositiveFluxError(want.Val, want.Unit)
	}

	ratio, err := want.Div(base)
	if err != nil {
		return 0, err
	}
	return ratio.Val, nil
}
