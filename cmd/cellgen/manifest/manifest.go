// Package manifest loads and validates the YAML declaration manifest that
// cellgen renders into Go source.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest describes one package's cells, declared together.
type Manifest struct {
	Package  string   `yaml:"package"`
	Registry string   `yaml:"registry,omitempty"`
	Imports  []string `yaml:"imports,omitempty"`
	Cells    []Cell   `yaml:"cells"`
}

// Cell is a single named deferred value.
type Cell struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Init     string `yaml:"init"`
	Fallible bool   `yaml:"fallible,omitempty"`
	Exported bool   `yaml:"exported,omitempty"`
	Doc      string `yaml:"doc,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

var (
	identRe      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	lowerCamelRe = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
	initRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
)

// Validate checks identifiers and uniqueness, and fills in the default
// registry variable name.
func (m *Manifest) Validate() error {
	if !identRe.MatchString(m.Package) {
		return fmt.Errorf("manifest: invalid package name %q", m.Package)
	}
	if m.Registry == "" {
		m.Registry = "cells"
	} else if !identRe.MatchString(m.Registry) {
		return fmt.Errorf("manifest: invalid registry name %q", m.Registry)
	}
	if len(m.Cells) == 0 {
		return errors.New("manifest: no cells declared")
	}

	seen := map[string]bool{}
	for _, c := range m.Cells {
		if !lowerCamelRe.MatchString(c.Name) {
			return fmt.Errorf("manifest: cell name %q must be a lowerCamel identifier", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("manifest: cell %q declared twice", c.Name)
		}
		seen[c.Name] = true
		if strings.TrimSpace(c.Type) == "" {
			return fmt.Errorf("manifest: cell %q has no type", c.Name)
		}
		if !initRe.MatchString(c.Init) {
			return fmt.Errorf("manifest: cell %q has invalid init func %q", c.Name, c.Init)
		}
	}
	return nil
}
