package photom

import (
	"fmt"
	"math"

	"github.com/orionlab/fluxconv/internal/unit"
)

// Zero-point constants for the builtin systems.
const (
	// abZeroPointExponent is the AB system constant: mAB = −2.5·log10 fν − 48.57
	// with fν in erg/s/cm²/Hz. This is the legacy Oke zero point the
	// original conversion form used; the modern convention is 48.60.
	abZeroPointExponent = 48.57

	// stZeroPointExponent is the ST system constant: mST = −2.5·log10 fλ − 21.10
	// with fλ in erg/s/cm²/Å.
	stZeroPointExponent = 21.10

	// iZeroPointJy and iReferenceMicron define the local "I" system:
	// 2250 Jy at 0.90 µm. Supplied by the source material as a constant,
	// not derived here.
	iZeroPointJy     = 2250.0
	iReferenceMicron = 0.90
)

// Builtin returns a registry holding the fixed systems: AB, ST, and the
// local I system.
func Builtin() *Registry {
	r := NewRegistry()

	register := func(name string, zp, ref unit.Value) {
		if err := r.Register(name, zp, ref); err != nil {
			// Builtins are constants; a failure here is a programming error.
			panic(fmt.Sprintf("builtin system %s: %v", name, err))
		}
	}

	register("AB",
		unit.New(math.Pow(10, -abZeroPointExponent/2.5), unit.FNU),
		unit.Value{})
	register("ST",
		unit.New(math.Pow(10, -stZeroPointExponent/2.5), unit.FLAM),
		unit.Value{})
	register("I",
		unit.New(iZeroPointJy, unit.Jansky),
		unit.New(iReferenceMicron, unit.Micron))

	return r
}
