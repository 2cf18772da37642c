package evo

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Params configures the evolutionary search. Loadable from a JSON or YAML file.
type Params struct {
	Generations uint32 `yaml:"generations"`
	Population  uint32 `yaml:"population"`
}

// DefaultParams returns 50 generations of 10 individuals.
func DefaultParams() Params {
	return Params{
		Generations: 50,
		Population:  10,
	}
}

// Validate checks parameter ranges. Generations may be zero or one; the
// search then returns no plan.
func (p Params) Validate() error {
	if p.Population == 0 {
		return errors.New("population must be > 0")
	}
	return nil
}

// LoadParams reads parameters from path. Keys absent from the file keep
// their defaults.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultParams(), fmt.Errorf("reading evolution params: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultParams(), fmt.Errorf("parsing evolution params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return DefaultParams(), fmt.Errorf("evolution params %s: %w", path, err)
	}
	return p, nil
}

// LoadParamsOrDefault is LoadParams for optional files: an empty path yields
// the defaults, and any failure is logged as a warning and also yields the
// defaults.
func LoadParamsOrDefault(path string) Params {
	if path == "" {
		return DefaultParams()
	}
	p, err := LoadParams(path)
	if err != nil {
		logrus.Warnf("Failed to read the evolution parameters; continuing with defaults: %v", err)
		return DefaultParams()
	}
	return p
}
