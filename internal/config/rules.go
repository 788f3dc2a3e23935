package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the per-site policy data: who is never assigned, the named
// people some duties prefer, and presentation knobs.
type Rules struct {
	Managers     []string `yaml:"managers"`
	OffMarkers   []string `yaml:"off_markers"`
	DoorPerson   string   `yaml:"door_person"`
	RunnerPerson string   `yaml:"runner_person"`
	CashPriority []string `yaml:"cash_priority"`
	Tables       int      `yaml:"tables"`
	Placeholder  string   `yaml:"placeholder"`
}

// DefaultRules mirrors the behavior of a site without a rules file.
func DefaultRules() Rules {
	return Rules{
		Managers:    []string{"Ana"},
		OffMarkers:  []string{"off", "folga"},
		Tables:      30,
		Placeholder: "____",
	}
}

// LoadRules reads a YAML rules file. Environment references are expanded
// before parsing. An empty path yields DefaultRules.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return &rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &rules); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	if len(rules.OffMarkers) == 0 {
		rules.OffMarkers = DefaultRules().OffMarkers
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return &rules, nil
}

// Validate reports configuration values the rule engine cannot work with.
func (r Rules) Validate() error {
	if r.Tables < 0 {
		return errors.New("tables must not be negative")
	}
	if r.Placeholder == "" {
		return errors.New("placeholder must not be empty")
	}
	return nil
}
