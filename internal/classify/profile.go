package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"archlens/internal/errors"
)

// Profile overrides criterion priorities by criterion id, so the decision
// can be tuned for a codebase without changing the criteria themselves.
type Profile struct {
	Name       string         `yaml:"name"`
	Priorities map[string]int `yaml:"priorities"`
}

// PriorityFor returns the overridden priority for the criterion id, or the
// fallback when no override exists. A nil profile never overrides.
func (p *Profile) PriorityFor(criterionID string, fallback int) int {
	if p == nil {
		return fallback
	}
	if v, ok := p.Priorities[criterionID]; ok {
		return v
	}
	return fallback
}

// LoadProfile reads a YAML profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.ProfileInvalid, fmt.Sprintf("reading profile %s", path), err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a YAML profile document.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.New(errors.ProfileInvalid, "decoding profile", err)
	}
	for id, prio := range p.Priorities {
		if prio < 0 {
			return nil, errors.New(errors.ProfileInvalid, fmt.Sprintf("priority for %s is negative", id), nil)
		}
	}
	return &p, nil
}
