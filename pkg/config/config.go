// Package config loads the planner settings file: season rules and the
// per-role shift definitions used when a request does not carry its own.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

// ShiftEntry is one shift in the settings file
type ShiftEntry struct {
	Name  string  `yaml:"name"`
	Start int     `yaml:"start"`
	End   int     `yaml:"end"`
	Hours float64 `yaml:"hours"`
}

// Settings is the parsed settings file. Either section may be empty, in
// which case requests must supply the corresponding records inline.
type Settings struct {
	Seasons []models.SeasonRule     `yaml:"seasons"`
	Shifts  map[string][]ShiftEntry `yaml:"shifts"`
}

// Load reads and validates a settings file. A missing file is treated as
// empty settings to simplify startup; a malformed file is an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("settings: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a settings payload
func Parse(data []byte) (*Settings, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Settings{}, nil
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the settings eagerly, before any computation runs
func (s *Settings) Validate() error {
	for i, r := range s.Seasons {
		if r.Season == "" {
			return fmt.Errorf("season rule %d has no label", i)
		}
		if len(r.Months) == 0 || len(r.Weekdays) == 0 {
			return fmt.Errorf("season rule %d (%s) must list months and weekdays", i, r.Season)
		}
		for _, m := range r.Months {
			if m < 1 || m > 12 {
				return fmt.Errorf("season rule %d (%s) has month %d out of range 1-12", i, r.Season, m)
			}
		}
		for _, w := range r.Weekdays {
			if w < 0 || w > 6 {
				return fmt.Errorf("season rule %d (%s) has weekday %d out of range 0-6", i, r.Season, w)
			}
		}
	}

	for role, shifts := range s.Shifts {
		names := make(map[string]bool, len(shifts))
		for _, sh := range shifts {
			if sh.Name == "" {
				return fmt.Errorf("role %s has a shift with no name", role)
			}
			if names[sh.Name] {
				return fmt.Errorf("role %s has duplicate shift name %s", role, sh.Name)
			}
			names[sh.Name] = true
			if sh.Hours <= 0 {
				return fmt.Errorf("shift %s for role %s has non-positive hours (%g)", sh.Name, role, sh.Hours)
			}
			if sh.Start < 0 || sh.Start > 23 || sh.End < 0 || sh.End > 23 {
				return fmt.Errorf("shift %s for role %s has hours outside 0-23", sh.Name, role)
			}
		}
	}
	return nil
}

// ShiftDefinitions converts the settings shifts into planner shift
// definitions keyed by role, preserving file order within each role
func (s *Settings) ShiftDefinitions() map[string][]models.ShiftDefinition {
	out := make(map[string][]models.ShiftDefinition, len(s.Shifts))
	for role, shifts := range s.Shifts {
		defs := make([]models.ShiftDefinition, 0, len(shifts))
		for _, sh := range shifts {
			defs = append(defs, models.ShiftDefinition{
				Role:  role,
				Name:  sh.Name,
				Start: sh.Start,
				End:   sh.End,
				Hours: sh.Hours,
			})
		}
		out[role] = defs
	}
	return out
}
