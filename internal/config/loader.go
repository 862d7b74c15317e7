package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrScenarioCount = errors.New("scenario file must define one or two scenarios")

// Scenario is one side of an A/B comparison: a name plus the overrides
// applied on top of Base().
type Scenario struct {
	Name   string             `yaml:"name" json:"name"`
	Values map[string]float64 `yaml:"values" json:"values"`
}

// Config returns Base() with the scenario overrides applied.
func (s Scenario) Config() Config {
	return Base().With(s.Values)
}

type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenarios reads a scenario file and returns the pair to compare. A file
// with a single scenario is compared against itself.
func LoadScenarios(path string) (Scenario, Scenario, error) {
	var sf ScenarioFile
	if err := loadYAML(path, &sf); err != nil {
		return Scenario{}, Scenario{}, fmt.Errorf("loading scenarios %s: %w", path, err)
	}
	return sf.Pair()
}

// Pair validates the file contents and returns the two scenarios.
func (sf ScenarioFile) Pair() (Scenario, Scenario, error) {
	switch len(sf.Scenarios) {
	case 1:
		a := sf.Scenarios[0]
		if err := checkKeys(a); err != nil {
			return Scenario{}, Scenario{}, err
		}
		b := Scenario{Name: a.Name, Values: make(map[string]float64, len(a.Values))}
		for k, v := range a.Values {
			b.Values[k] = v
		}
		return a, b, nil
	case 2:
		for _, s := range sf.Scenarios {
			if err := checkKeys(s); err != nil {
				return Scenario{}, Scenario{}, err
			}
		}
		return sf.Scenarios[0], sf.Scenarios[1], nil
	default:
		return Scenario{}, Scenario{}, fmt.Errorf("got %d: %w", len(sf.Scenarios), ErrScenarioCount)
	}
}

func checkKeys(s Scenario) error {
	for k := range s.Values {
		if k == "name" {
			continue
		}
		if !IsKnownKey(k) {
			return fmt.Errorf("scenario %q: %s: %w", s.Name, k, ErrUnknownKey)
		}
	}
	return nil
}
