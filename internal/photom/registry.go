package photom

import (
	"math"
	"sort"

	"github.com/orionlab/fluxconv/internal/unit"
)

// System is a named photometric system: the flux density that defines
// magnitude 0, plus an optional reference wavelength for systems whose zero
// point is tied to a specific band.
type System struct {
	Name string

	// ZeroPoint is the flux density of a magnitude-0 source.
	ZeroPoint unit.Value

	// ReferenceWavelength is the band wavelength, or the zero Value for
	// systems defined independently of wavelength (AB, ST).
	ReferenceWavelength unit.Value
}

// Registry is a fixed set of magnitude systems. Populate it during
// initialization, before any concurrent reads begin; reads after that need
// no synchronization because the map is never written again.
type Registry struct {
	systems map[string]System
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{systems: make(map[string]System)}
}

// Register adds a system. Fails with DUPLICATE_SYSTEM if the name is taken
// and with INCOMPATIBLE_UNITS if the zero point is not a flux density.
func (r *Registry) Register(name string, zeroPoint, referenceWavelength unit.Value) error {
	if _, ok := r.systems[name]; ok {
		return NewDuplicateSystemError(name)
	}
	if !zeroPoint.Unit.Kind.IsFlux() {
		return unit.NewIncompatibleUnitsError(zeroPoint.Unit, unit.Unit{},
			"zero point must be a flux density")
	}
	if zeroPoint.Val <= 0 {
		return unit.NewNonPositiveFluxError(zeroPoint.Val, zeroPoint.Unit)
	}

	r.systems[name] = System{
		Name:                name,
		ZeroPoint:           zeroPoint,
		ReferenceWavelength: referenceWavelength,
	}
	return nil
}

// System returns the named system. Fails with UNKNOWN_SYSTEM.
func (r *Registry) System(name string) (System, error) {
	sys, ok := r.systems[name]
	if !ok {
		return System{}, NewUnknownSystemError(name)
	}
	return sys, nil
}

// Names returns the registered system names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FluxToMagnitude converts a flux density to a magnitude on the named
// system. The flux is converted into the zero point's unit first; when that
// crosses flux conventions, the system's reference wavelength supplies the
// photon-energy context (missing-context error if the system has none).
func (r *Registry) FluxToMagnitude(name string, flux unit.Value) (unit.Value, error) {
	sys, err := r.System(name)
	if err != nil {
		return unit.Value{}, err
	}

	matched, err := flux.ConvertAt(sys.ZeroPoint.Unit, sys.ReferenceWavelength)
	if err != nil {
		return unit.Value{}, err
	}
	return matched.ToMagnitude(sys.ZeroPoint)
}

// MagnitudeToFlux inverts FluxToMagnitude: the flux density, in the zero
// point's unit, of a source at the given magnitude.
func (r *Registry) MagnitudeToFlux(name string, magnitude unit.Value) (unit.Value, error) {
	sys, err := r.System(name)
	if err != nil {
		return unit.Value{}, err
	}
	if magnitude.Unit.Kind != unit.KindMagnitude {
		return unit.Value{}, unit.NewIncompatibleUnitsError(magnitude.Unit, unit.Mag,
			"expected a magnitude value")
	}

	flux := sys.ZeroPoint.Val * math.Pow(10, -magnitude.Val/2.5)
	return unit.New(flux, sys.ZeroPoint.Unit), nil
}
