// Package spectral provides spectral-shape models for flux extrapolation.
//
// A Model separates shape (blackbody temperature, power-law index) from
// normalization: fit the shape to one observed flux point with NormalizeTo,
// then read off the flux the shape implies at any other wavelength with
// Evaluate. Models are immutable values; NormalizeTo returns a new model.
package spectral
