package unit

import (
	"fmt"
	"math"
	"strings"
)

// Value is an immutable tagged quantity: a float64 magnitude carrying a Unit.
// Operations never mutate; each returns a new Value.
type Value struct {
	Val  float64
	Unit Unit
}

// New constructs a Value.
func New(val float64, u Unit) Value {
	return Value{Val: val, Unit: u}
}

// IsZero reports whether the value is the zero Value (no unit attached).
// Used to represent optional values such as a missing reference wavelength.
func (v Value) IsZero() bool {
	return v.Unit.Kind == ""
}

// String renders the value with its unit symbol, e.g. "1e-13 Jy".
func (v Value) String() string {
	if v.Unit.Symbol == "" {
		return fmt.Sprintf("%g", v.Val)
	}
	return strings.TrimSpace(fmt.Sprintf("%g %s", v.Val, v.Unit.Symbol))
}

// canonicalVal is the magnitude expressed in the canonical unit of the kind.
func (v Value) canonicalVal() float64 {
	return v.Val * v.Unit.Factor
}

// Convert rescales the value into target, which must be of the same kind or
// reachable by the context-free wavelength↔frequency inversion (ν = c/λ).
//
// Converting between two flux conventions (per-frequency, per-wavelength,
// photon) depends on photon energy and fails with a MISSING_CONTEXT error;
// use ConvertAt for those. Any other kind change fails with
// INCOMPATIBLE_UNITS.
func (v Value) Convert(target Unit) (Value, error) {
	switch {
	case v.Unit.Kind == target.Kind:
		// Magnitude and scalar scales are not multiplicative; there is
		// only one unit of each, so the value carries over.
		if v.Unit.Kind == KindMagnitude || v.Unit.Kind == KindScalar {
			return Value{Val: v.Val, Unit: target}, nil
		}
		return Value{Val: v.canonicalVal() / target.Factor, Unit: target}, nil

	case v.Unit.Kind == KindWavelength && target.Kind == KindFrequency:
		lam := v.canonicalVal()
		if lam <= 0 {
			return Value{}, NewNonPositiveFluxError(v.Val, v.Unit)
		}
		return Value{Val: SpeedOfLight / lam / target.Factor, Unit: target}, nil

	case v.Unit.Kind == KindFrequency && target.Kind == KindWavelength:
		nu := v.canonicalVal()
		if nu <= 0 {
			return Value{}, NewNonPositiveFluxError(v.Val, v.Unit)
		}
		return Value{Val: SpeedOfLight / nu / target.Factor, Unit: target}, nil

	case v.Unit.Kind.IsFlux() && target.Kind.IsFlux():
		return Value{}, NewMissingContextError(v.Unit, target)

	default:
		return Value{}, NewIncompatibleUnitsError(v.Unit, target, "no conversion path between kinds")
	}
}

// ConvertAt converts the value into target using at as the photon-energy
// context. The context is a wavelength or frequency and is required whenever
// source and target are different flux conventions; for conversions Convert
// can already do, the context is ignored.
func (v Value) ConvertAt(target Unit, at Value) (Value, error) {
	if v.Unit.Kind == target.Kind || !v.Unit.Kind.IsFlux() || !target.Kind.IsFlux() {
		return v.Convert(target)
	}

	lam, err := contextWavelength(at, v.Unit, target)
	if err != nil {
		return Value{}, err
	}

	// Route through canonical FLAM (erg/s/cm²/Å) at wavelength lam (Å).
	f := v.canonicalVal()
	switch v.Unit.Kind {
	case KindFluxPerFreq:
		f = f * SpeedOfLight / (lam * lam)
	case KindPhotonFlux:
		f = f * HC / lam
	}
	switch target.Kind {
	case KindFluxPerFreq:
		f = f * lam * lam / SpeedOfLight
	case KindPhotonFlux:
		f = f * lam / HC
	}

	return Value{Val: f / target.Factor, Unit: target}, nil
}

// contextWavelength reduces a context value to a positive wavelength in Å.
func contextWavelength(at Value, from, to Unit) (float64, error) {
	if at.IsZero() {
		return 0, NewMissingContextError(from, to)
	}

	var lam float64
	switch at.Unit.Kind {
	case KindWavelength:
		lam = at.canonicalVal()
	case KindFrequency:
		nu := at.canonicalVal()
		if nu <= 0 {
			return 0, NewInvalidContextError(at, "context frequency must be positive")
		}
		lam = SpeedOfLight / nu
	default:
		return 0, NewInvalidContextError(at, "context must be a wavelength or frequency")
	}

	if lam <= 0 {
		return 0, NewInvalidContextError(at, "context wavelength must be positive")
	}
	return lam, nil
}

// ToMagnitude converts a flux-density value into a magnitude against a zero
// point of the same flux kind: −2.5·log10(v/zp). The value is rescaled into
// the zero point's unit before taking the ratio.
func (v Value) ToMagnitude(zeroPoint Value) (Value, error) {
	if !v.Unit.Kind.IsFlux() || v.Unit.Kind != zeroPoint.Unit.Kind {
		return Value{}, NewIncompatibleUnitsError(v.Unit, zeroPoint.Unit,
			"magnitude requires a flux density and a zero point of the same kind")
	}
	if v.Val <= 0 {
		return Value{}, NewNonPositiveFluxError(v.Val, v.Unit)
	}
	if zeroPoint.Val <= 0 {
		return Value{}, NewNonPositiveFluxError(zeroPoint.Val, zeroPoint.Unit)
	}

	ratio := v.canonicalVal() / zeroPoint.canonicalVal()
	return Value{Val: -2.5 * math.Log10(ratio), Unit: Mag}, nil
}

// Scale multiplies the value by a dimensionless scalar.
func (v Value) Scale(s float64) Value {
	return Value{Val: v.Val * s, Unit: v.Unit}
}

// Mul multiplies two values. One operand must be dimensionless; the product
// of two dimensioned quantities (flux × flux in particular) has no unit in
// this package and fails with INCOMPATIBLE_UNITS.
func (v Value) Mul(o Value) (Value, error) {
	switch {
	case o.Unit.Kind == KindScalar:
		return v.Scale(o.Val), nil
	case v.Unit.Kind == KindScalar:
		return o.Scale(v.Val), nil
	default:
		return Value{}, NewIncompatibleUnitsError(v.Unit, o.Unit,
			"product of two dimensioned quantities is not defined")
	}
}

// Div divides v by o. Dividing by a scalar rescales; dividing two values of
// the same kind yields a dimensionless ratio (the normalization idiom).
// Anything else fails with INCOMPATIBLE_UNITS.
func (v Value) Div(o Value) (Value, error) {
	if o.Val == 0 {
		return Value{}, NewNonPositiveFluxError(o.Val, o.Unit)
	}

	switch {
	case o.Unit.Kind == KindScalar:
		return v.Scale(1 / o.Val), nil
	case v.Unit.Kind == o.Unit.Kind:
		den, err := o.Convert(v.Unit)
		if err != nil {
			return Value{}, err
		}
		return Value{Val: v.Val / den.Val, Unit: Unitless}, nil
	default:
		return Value{}, NewIncompatibleUnitsError(v.Unit, o.Unit,
			"quotient of different kinds is not defined")
	}
}
