package unit

// Physical constants in the package's canonical cgs/Å system.
// CODATA 2018 exact values.
const (
	// SpeedOfLight is c in Å/s.
	SpeedOfLight = 2.99792458e18

	// PlanckConstant is h in erg·s.
	PlanckConstant = 6.62607015e-27

	// BoltzmannConstant is k in erg/K.
	BoltzmannConstant = 1.380649e-16

	// HC is h·c in erg·Å, the energy of a photon of wavelength 1 Å.
	HC = PlanckConstant * SpeedOfLight

	// HCOverK is h·c/k in Å·K, the Planck exponent scale.
	HCOverK = HC / BoltzmannConstant
)
