package version

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Provider enumerates the known versions exactly once, at catalog
// construction. Order and duplicates in the result are unspecified; the
// catalog normalizes both.
type Provider interface {
	Versions() ([]Version, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() ([]Version, error)

// Versions implements Provider.
func (f ProviderFunc) Versions() ([]Version, error) {
	return f()
}

// Static builds a provider over a fixed registration of versions.
//
//nolint:ireturn
func Static(versions ...Version) Provider {
	return ProviderFunc(func() ([]Version, error) {
		return slices.Clone(versions), nil
	})
}

// FileProvider enumerates versions from a YAML document listing display
// names:
//
//	versions:
//	  - 1.0.0
//	  - 1.1.0
//	  - 2.0.0
type FileProvider struct {
	Path string
}

type fileDocument struct {
	Versions []string `yaml:"versions"`
}

// Versions reads and parses the version file.
func (p FileProvider) Versions() ([]Version, error) {
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read version file: %w", err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse version file: %w", err)
	}

	versions := make([]Version, 0, len(doc.Versions))

	for _, name := range doc.Versions {
		v, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("version file entry %q: %w", name, err)
		}

		versions = append(versions, v)
	}

	return versions, nil
}
