// Package run executes declarative calculation scenarios.
//
// A scenario YAML file captures a complete flux calculation (observed flux,
// spectral model, output wavelength, unit, and magnitude system) so worked
// examples can be kept as data, executed from the CLI, and golden-tested.
package run
