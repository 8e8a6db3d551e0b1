// Package unit provides tagged physical quantities for astronomical flux work.
//
// This package contains value and unit definitions only. All other internal
// packages import unit; unit imports nothing internal. This keeps it the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Values are immutable; every operation returns a new Value
//   - Conversions that depend on photon energy require an explicit
//     wavelength or frequency context (ConvertAt)
//   - Canonical units are the cgs photometry set: erg/s/cm²/Hz,
//     erg/s/cm²/Å, photon/s/cm²/Å, Å, Hz
package unit
