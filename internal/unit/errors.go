package unit

import (
	"errors"
	"fmt"
)

// ConversionError represents a failed unit operation.
//
// Conversion errors include:
//   - Incompatible units: no conversion path between the two kinds
//   - Missing context: a photon-energy-dependent conversion requested
//     without a wavelength or frequency
//   - Invalid context: a context value that is not a positive
//     wavelength or frequency
//   - Non-positive flux: logarithm or division domain violation
//
// ConversionError includes the operand unit symbols for diagnostics.
type ConversionError struct {
	// Code identifies the error category.
	Code ConversionErrorCode

	// Message is a human-readable description.
	Message string

	// From is the source unit symbol, if applicable.
	From string

	// To is the target unit symbol, if applicable.
	To string
}

// ConversionErrorCode categorizes conversion errors.
type ConversionErrorCode string

const (
	// ErrCodeIncompatibleUnits indicates a dimensional mismatch.
	ErrCodeIncompatibleUnits ConversionErrorCode = "INCOMPATIBLE_UNITS"

	// ErrCodeMissingContext indicates a wavelength-dependent conversion
	// was requested without a wavelength or frequency context.
	ErrCodeMissingContext ConversionErrorCode = "MISSING_CONTEXT"

	// ErrCodeInvalidContext indicates the supplied context is not a
	// positive wavelength or frequency.
	ErrCodeInvalidContext ConversionErrorCode = "INVALID_CONTEXT"

	// ErrCodeNonPositiveFlux indicates a logarithm or division over a
	// non-positive value.
	ErrCodeNonPositiveFlux ConversionErrorCode = "NON_POSITIVE_FLUX"

	// ErrCodeUnknownUnit indicates an unrecognized unit symbol.
	ErrCodeUnknownUnit ConversionErrorCode = "UNKNOWN_UNIT"
)

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.From != "" && e.To != "" {
		return fmt.Sprintf("%s: %s (from=%s, to=%s)", e.Code, e.Message, e.From, e.To)
	}
	if e.From != "" {
		return fmt.Sprintf("%s: %s (unit=%s)", e.Code, e.Message, e.From)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsIncompatibleUnits returns true if the error is a dimensional mismatch.
// Uses errors.As to handle wrapped errors.
func IsIncompatibleUnits(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeIncompatibleUnits
	}
	return false
}

// IsMissingContext returns true if the error is a missing-context error.
// Uses errors.As to handle wrapped errors.
func IsMissingContext(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeMissingContext
	}
	return false
}

// IsNonPositiveFlux returns true if the error is a domain violation on a
// non-positive value. Uses errors.As to handle wrapped errors.
func IsNonPositiveFlux(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeNonPositiveFlux
	}
	return false
}

// NewIncompatibleUnitsError creates a ConversionError for a dimensional
// mismatch between two units.
func NewIncompatibleUnitsError(from, to Unit, message string) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeIncompatibleUnits,
		Message: message,
		From:    from.Symbol,
		To:      to.Symbol,
	}
}

// NewMissingContextError creates a ConversionError for a conversion that
// needs a wavelength or frequency context.
func NewMissingContextError(from, to Unit) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeMissingContext,
		Message: "conversion depends on photon energy; supply a wavelength or frequency context",
		From:    from.Symbol,
		To:      to.Symbol,
	}
}

// NewInvalidContextError creates a ConversionError for an unusable context.
func NewInvalidContextError(ctx Value, message string) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeInvalidContext,
		Message: message,
		From:    ctx.Unit.Symbol,
	}
}

// NewNonPositiveFluxError creates a ConversionError for a logarithm or
// division domain violation.
func NewNonPositiveFluxError(val float64, u Unit) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeNonPositiveFlux,
		Message: fmt.Sprintf("value %g is outside the positive domain", val),
		From:    u.Symbol,
	}
}

// NewUnknownUnitError creates a ConversionError for an unrecognized symbol.
func NewUnknownUnitError(symbol string) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeUnknownUnit,
		Message: fmt.Sprintf("unrecognized unit symbol %q", symbol),
		From:    symbol,
	}
}
