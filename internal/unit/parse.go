package unit

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// symbolTable maps normalized unit spellings to units. Keys are NFKC
// normalized and lowercased, so "µJy" (micro sign) and "μJy" (Greek mu)
// resolve to the same unit. "m" and "mag" stay distinct after folding;
// "mJy" vs "MJy" ambiguity is avoided by not defining megajansky.
var symbolTable = map[string]Unit{
	"jy":           Jansky,
	"jansky":       Jansky,
	"mjy":          MilliJansky,
	"μjy":          MicroJansky, // NFKC folds µ (micro sign) to μ (Greek mu)
	"ujy":          MicroJansky,
	"fnu":          FNU,
	"erg/s/cm2/hz": FNU,
	"w/m2/hz":      WattPerM2Hz,
	"flam":         FLAM,
	"erg/s/cm2/a":  FLAM,
	"w/m2/um":      WattPerM2Micron,
	"w/m2/μm":      WattPerM2Micron,
	"photlam":      PHOTLAM,
	"angstrom":     Angstrom,
	"a":            Angstrom,
	"aa":           Angstrom,
	"å":            Angstrom,
	"nm":           Nanometer,
	"micron":       Micron,
	"um":           Micron,
	"μm":           Micron,
	"m":            Meter,
	"hz":           Hertz,
	"ghz":          Gigahertz,
	"thz":          Terahertz,
	"mag":          Mag,
}

// normalizeSymbol folds a user-supplied unit spelling to its table key.
// NFKC unifies compatibility characters (micro sign vs Greek mu, Å vs A+ring)
// before case folding.
func normalizeSymbol(s string) string {
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(s)))
}

// ParseUnit resolves a unit symbol. Fails with UNKNOWN_UNIT for symbols not
// in the table.
func ParseUnit(symbol string) (Unit, error) {
	if u, ok := symbolTable[normalizeSymbol(symbol)]; ok {
		return u, nil
	}
	return Unit{}, NewUnknownUnitError(symbol)
}

// ParseValue parses a quantity of the form "<number> <unit>", with the space
// optional: "1e-13 Jy", "0.5micron", "5500Hz".
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)

	// Longest numeric prefix strconv accepts.
	split := len(s)
	for ; split > 0; split-- {
		if _, err := strconv.ParseFloat(s[:split], 64); err == nil {
			break
		}
	}
	if split == 0 {
		return Value{}, NewUnknownUnitError(s)
	}

	val, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return Value{}, NewUnknownUnitError(s)
	}
	u, err := ParseUnit(s[split:])
	if err != nil {
		return Value{}, err
	}
	return New(val, u), nil
}
