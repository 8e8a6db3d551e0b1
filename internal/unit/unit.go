package unit

// Kind classifies the physical dimension of a value.
type Kind string

const (
	// KindFluxPerFreq is spectral flux density per unit frequency.
	KindFluxPerFreq Kind = "flux_per_freq"

	// KindFluxPerWave is spectral flux density per unit wavelength.
	KindFluxPerWave Kind = "flux_per_wave"

	// KindPhotonFlux is photon flux density per unit wavelength.
	KindPhotonFlux Kind = "photon_flux"

	// KindWavelength is a wavelength.
	KindWavelength Kind = "wavelength"

	// KindFrequency is a frequency.
	KindFrequency Kind = "frequency"

	// KindMagnitude is a dimensionless logarithmic magnitude.
	KindMagnitude Kind = "magnitude"

	// KindScalar is a dimensionless ratio or scale factor.
	KindScalar Kind = "scalar"
)

// IsFlux reports whether the kind is one of the three flux-density
// conventions (per-frequency, per-wavelength, photon).
func (k Kind) IsFlux() bool {
	return k == KindFluxPerFreq || k == KindFluxPerWave || k == KindPhotonFlux
}

// Unit is a scale of a Kind. Factor converts one of this unit into the
// canonical unit of the kind (erg/s/cm²/Hz, erg/s/cm²/Å, photon/s/cm²/Å,
// Å, Hz). Magnitude and scalar units have Factor 1 by construction; their
// scales are not multiplicative.
type Unit struct {
	Symbol string
	Kind   Kind
	Factor float64
}

// Flux density per unit frequency.
var (
	FNU         = Unit{Symbol: "erg/s/cm2/Hz", Kind: KindFluxPerFreq, Factor: 1}
	Jansky      = Unit{Symbol: "Jy", Kind: KindFluxPerFreq, Factor: 1e-23}
	MilliJansky = Unit{Symbol: "mJy", Kind: KindFluxPerFreq, Factor: 1e-26}
	MicroJansky = Unit{Symbol: "µJy", Kind: KindFluxPerFreq, Factor: 1e-29}
	WattPerM2Hz = Unit{Symbol: "W/m2/Hz", Kind: KindFluxPerFreq, Factor: 1e3}
)

// Flux density per unit wavelength.
var (
	FLAM            = Unit{Symbol: "erg/s/cm2/A", Kind: KindFluxPerWave, Factor: 1}
	WattPerM2Micron = Unit{Symbol: "W/m2/um", Kind: KindFluxPerWave, Factor: 0.1}
)

// Photon flux density per unit wavelength.
var (
	PHOTLAM = Unit{Symbol: "photlam", Kind: KindPhotonFlux, Factor: 1}
)

// Wavelength.
var (
	Angstrom  = Unit{Symbol: "Angstrom", Kind: KindWavelength, Factor: 1}
	Nanometer = Unit{Symbol: "nm", Kind: KindWavelength, Factor: 10}
	Micron    = Unit{Symbol: "micron", Kind: KindWavelength, Factor: 1e4}
	Meter     = Unit{Symbol: "m", Kind: KindWavelength, Factor: 1e10}
)

// Frequency.
var (
	Hertz     = Unit{Symbol: "Hz", Kind: KindFrequency, Factor: 1}
	Gigahertz = Unit{Symbol: "GHz", Kind: KindFrequency, Factor: 1e9}
	Terahertz = Unit{Symbol: "THz", Kind: KindFrequency, Factor: 1e12}
)

// Dimensionless.
var (
	Mag      = Unit{Symbol: "mag", Kind: KindMagnitude, Factor: 1}
	Unitless = Unit{Symbol: "", Kind: KindScalar, Factor: 1}
)
