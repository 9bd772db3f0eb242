// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Scenario is one named SIR parameter set in a scenario file.
type Scenario struct {
	Name    string  `yaml:"name" validate:"required"`
	Beta    float64 `yaml:"beta" validate:"min=0"`
	Gamma   float64 `yaml:"gamma" validate:"min=0"`
	S0      float64 `yaml:"s0" validate:"min=0"`
	I0      float64 `yaml:"i0" validate:"min=0"`
	R0      float64 `yaml:"r0" validate:"min=0"`
	Horizon int     `yaml:"horizon" validate:"required,min=1"`

	// Density selects density-dependent transmission; the default
	// (frequency-dependent) matches the usual textbook parameterization.
	Density bool `yaml:"density"`
}

// File is the top-level scenario document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios" validate:"required,min=1,dive"`
}

// Parse decodes and validates a scenario document. Unknown fields are
// rejected so typos fail loudly instead of silently running defaults.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid scenarios: %w", err)
	}
	seen := map[string]bool{}
	for _, s := range f.Scenarios {
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return &f, nil
}

// Load reads and parses a scenario file from disk.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
