package photom

import (
	"errors"
	"fmt"
)

// RegistryError represents a magnitude-system registry misuse.
type RegistryError struct {
	// Code identifies the error category.
	Code RegistryErrorCode

	// Name is the system name involved.
	Name string
}

// RegistryErrorCode categorizes registry errors.
type RegistryErrorCode string

const (
	// ErrCodeUnknownSystem indicates a lookup of an unregistered name.
	ErrCodeUnknownSystem RegistryErrorCode = "UNKNOWN_SYSTEM"

	// ErrCodeDuplicateSystem indicates a registration under a taken name.
	ErrCodeDuplicateSystem RegistryErrorCode = "DUPLICATE_SYSTEM"
)

// Error implements the error interface.
func (e *RegistryError) Error() string {
	return fmt.Sprintf("%s: magnitude system %q", e.Code, e.Name)
}

// IsUnknownSystem returns true if the error is an unknown-system lookup.
// Uses errors.As to handle wrapped errors.
func IsUnknownSystem(err error) bool {
	var re *RegistryError
	if errors.As(err, &re) {
		return re.Code == ErrCodeUnknownSystem
	}
	return false
}

// IsDuplicateSystem returns true if the error is a duplicate registration.
// Uses errors.As to handle wrapped errors.
func IsDuplicateSystem(err error) bool {
	var re *RegistryError
	if errors.As(err, &re) {
		return re.Code == ErrCodeDuplicateSystem
	}
	return false
}

// NewUnknownSystemError creates a RegistryError for a missing system.
func NewUnknownSystemError(name string) *RegistryError {
	return &RegistryError{Code: ErrCodeUnknownSystem, Name: name}
}

// NewDuplicateSystemError creates a RegistryError for a name collision.
func NewDuplicateSystemError(name string) *RegistryError {
	return &RegistryError{Code: ErrCodeDuplicateSystem, Name: name}
}
