package formstate

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
)

// DependencyConfig maps a triggering field to the fields that must be
// re-validated whenever it changes. Dependent re-validation is one hop deep:
// a dependent's own dependents are not cascaded into unless they are also
// configured for the trigger.
type DependencyConfig struct {
	deps map[fieldpath.Path][]fieldpath.Path
}

// NewDependencyConfig creates an empty dependency configuration.
func NewDependencyConfig() *DependencyConfig {
	return &DependencyConfig{deps: make(map[fieldpath.Path][]fieldpath.Path)}
}

// WhenChanged registers dependents to re-validate when trigger changes.
// Self references and duplicates are dropped.
func (c *DependencyConfig) WhenChanged(trigger fieldpath.Path, dependents ...fieldpath.Path) *DependencyConfig {
	for _, d := range dependents {
		if d == trigger || d.IsZero() || slices.Contains(c.deps[trigger], d) {
			continue
		}
		c.deps[trigger] = append(c.deps[trigger], d)
	}
	return c
}

// Bidirectional wires a pair of fields to re-validate each other, the
// password/confirmPassword case.
func (c *DependencyConfig) Bidirectional(a, b fieldpath.Path) *DependencyConfig {
	return c.WhenChanged(a, b).WhenChanged(b, a)
}

// DependentsOf returns the dependents registered for the trigger.
func (c *DependencyConfig) DependentsOf(trigger fieldpath.Path) []fieldpath.Path {
	if c == nil || c.deps == nil {
		return nil
	}
	return slices.Clone(c.deps[trigger])
}

// Paths lists every field mentioned in the configuration, triggers and
// dependents alike, sorted for deterministic iteration.
func (c *DependencyConfig) Paths() []fieldpath.Path {
	if c == nil {
		return nil
	}
	var out []fieldpath.Path
	for trigger, deps := range c.deps {
		if !slices.Contains(out, trigger) {
			out = append(out, trigger)
		}
		for _, d := range deps {
			if !slices.Contains(out, d) {
				out = append(out, d)
			}
		}
	}
	slices.Sort(out)
	return out
}

// DependencyConfigFromYAML parses a declarative dependency map:
//
//	password: [confirmPassword]
//	confirmPassword: [password]
//	gender: [genderOther]
func DependencyConfigFromYAML(doc []byte) (*DependencyConfig, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("%w: dependency yaml: %v", ErrInvalidConfig, err)
	}

	cfg := NewDependencyConfig()
	for trigger, deps := range raw {
		paths := make([]fieldpath.Path, 0, len(deps))
		for _, d := range deps {
			paths = append(paths, fieldpath.Path(d))
		}
		cfg.WhenChanged(fieldpath.Path(trigger), paths...)
	}
	return cfg, nil
}
