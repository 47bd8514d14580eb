package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oskarw/pantrylist/internal/config"
)

// Scenario describes one scripted reconciliation run.
type Scenario struct {
	// Name identifies the scenario; the golden file shares it.
	Name string `yaml:"name"`

	// Description is free-form documentation.
	Description string `yaml:"description,omitempty"`

	// Threshold overrides the low-stock threshold (default 1).
	Threshold int `yaml:"threshold,omitempty"`

	// Seed is the grocery list before the engine starts, for scenarios
	// that exercise startup cleanup of a messy list.
	Seed []SeedEntry `yaml:"seed,omitempty"`

	// Snapshot is the inventory at initialization time.
	Snapshot []Item `yaml:"snapshot,omitempty"`

	// Steps run in order after initialization.
	Steps []Step `yaml:"steps,omitempty"`
}

// Item is an inventory item in scenario form.
type Item struct {
	Brand    string `yaml:"brand,omitempty"`
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
}

// SeedEntry is a pre-existing grocery entry.
type SeedEntry struct {
	Brand     string `yaml:"brand,omitempty"`
	Name      string `yaml:"name"`
	Ownership string `yaml:"ownership"` // "auto" | "manual"
	Checked   bool   `yaml:"checked,omitempty"`
}

// Step is one scripted action. Exactly one field must be set.
type Step struct {
	// Event feeds a live inventory change to the engine.
	Event *Event `yaml:"event,omitempty"`

	// AddManual adds a manual entry through the user-facing service.
	AddManual string `yaml:"add_manual,omitempty"`

	// Advance moves the manual clock forward, e.g. "4s".
	Advance config.Duration `yaml:"advance,omitempty"`

	// Sweep runs a duplicate sweep.
	Sweep bool `yaml:"sweep,omitempty"`
}

// Event is a live inventory change in scenario form.
type Event struct {
	Kind     string `yaml:"kind"` // "added" | "modified" | "removed"
	Brand    string `yaml:"brand,omitempty"`
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks structural constraints before a run.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("missing name")
	}

	for i, seed := range s.Seed {
		if seed.Name == "" {
			return fmt.Errorf("seed[%d]: missing name", i)
		}
		if seed.Ownership != "auto" && seed.Ownership != "manual" {
			return fmt.Errorf("seed[%d]: bad ownership %q", i, seed.Ownership)
		}
	}

	for i, step := range s.Steps {
		set := 0
		if step.Event != nil {
			set++
			switch step.Event.Kind {
			case "added", "modified", "removed":
			default:
				return fmt.Errorf("steps[%d]: bad event kind %q", i, step.Event.Kind)
			}
		}
		if step.AddManual != "" {
			set++
		}
		if step.Advance != 0 {
			set++
		}
		if step.Sweep {
			set++
		}
		if set != 1 {
			return fmt.Errorf("steps[%d]: exactly one action per step, got %d", i, set)
		}
	}

	return nil
}
