package run

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a declarative flux calculation: an observed flux at a
// wavelength, an optional spectral model fitted through it, and the
// wavelength, unit, and magnitude system to report the result in. It mirrors
// the steps a person performs with the library by hand.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario computes.
	Description string `yaml:"description,omitempty"`

	// Input is the observed flux point.
	Input InputSpec `yaml:"input"`

	// Model optionally names the spectral shape fitted through the input
	// point. Without a model the flux can only be re-expressed in other
	// units at the input wavelength.
	Model *ModelSpec `yaml:"model,omitempty"`

	// Output says where and how to report the result.
	Output OutputSpec `yaml:"output"`
}

// Quantity is a number-with-unit as written in a scenario file.
type Quantity struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// InputSpec is the observed flux point the calculation starts from.
type InputSpec struct {
	// Flux is the observed flux density.
	Flux Quantity `yaml:"flux"`

	// Wavelength is where the flux was observed. A frequency unit is
	// accepted here too.
	Wavelength Quantity `yaml:"wavelength"`
}

// ModelSpec selects and parameterizes a spectral shape.
type ModelSpec struct {
	// Type is "blackbody" or "powerlaw".
	Type string `yaml:"type"`

	// Temperature in Kelvin (blackbody only).
	Temperature float64 `yaml:"temperature,omitempty"`

	// Index is the spectral index (powerlaw only).
	Index float64 `yaml:"index,omitempty"`
}

// OutputSpec says how to report the result.
type OutputSpec struct {
	// Wavelength to evaluate at. Defaults to the input wavelength.
	Wavelength *Quantity `yaml:"wavelength,omitempty"`

	// Unit to express the output flux in. Defaults to the input unit.
	Unit string `yaml:"unit,omitempty"`

	// System optionally names a magnitude system to also report the flux
	// on.
	System string `yaml:"system,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the scenario for structural problems before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario must have a name")
	}
	if s.Input.Flux.Unit == "" {
		return fmt.Errorf("input.flux.unit is required")
	}
	if s.Input.Wavelength.Unit == "" {
		return fmt.Errorf("input.wavelength.unit is required")
	}

	if s.Model != nil {
		switch s.Model.Type {
		case "blackbody":
			if s.Model.Temperature <= 0 {
				return fmt.Errorf("blackbody model requires a positive temperature")
			}
		case "powerlaw":
			// Any finite index is allowed, including 0 (flat spectrum).
		default:
			return fmt.Errorf("unknown model type %q (want blackbody or powerlaw)", s.Model.Type)
		}
	}

	if s.Model == nil && s.Output.Wavelength != nil {
		return fmt.Errorf("output.wavelength requires a model: a bare flux point cannot be extrapolated")
	}

	return nil
}
