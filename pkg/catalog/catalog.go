// Package catalog holds the building catalog of a scenario: the external
// list a BuildingsParameter selection is checked against by consumers. The
// parameter core itself never validates building identifiers.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the catalog file inside a scenario directory.
const FileName = "zone-buildings.yaml"

// Building describes one building of the zone.
type Building struct {
	Name     string  `yaml:"name"`
	Floors   int     `yaml:"floors,omitempty"`
	HeightM  float64 `yaml:"height_m,omitempty"`
	RoofArea float64 `yaml:"roof_area_m2,omitempty"`
}

// Catalog is the set of buildings available in a scenario.
type Catalog struct {
	Buildings []Building `yaml:"buildings"`
}

// Load reads the catalog from a scenario directory.
func Load(scenarioDir string) (*Catalog, error) {
	path := filepath.Join(scenarioDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading building catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// Save writes the catalog into a scenario directory.
func Save(c *Catalog, scenarioDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling building catalog: %w", err)
	}
	if err := os.MkdirAll(scenarioDir, 0755); err != nil {
		return fmt.Errorf("creating scenario directory: %w", err)
	}
	path := filepath.Join(scenarioDir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Names returns all building names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Buildings))
	for _, b := range c.Buildings {
		names = append(names, b.Name)
	}
	return names
}

// Contains reports whether the catalog has a building with the given name.
func (c *Catalog) Contains(name string) bool {
	for _, b := range c.Buildings {
		if b.Name == name {
			return true
		}
	}
	return false
}

// Missing returns the identifiers of a selection that are not in the catalog.
// An empty selection means "all buildings" and has nothing missing.
func (c *Catalog) Missing(selection []string) []string {
	var missing []string
	for _, name := range selection {
		if !c.Contains(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Resolve expands a BuildingsParameter selection: an empty selection yields
// every building in the catalog, otherwise the selection is returned as-is
// after checking each identifier.
func (c *Catalog) Resolve(selection []string) ([]string, error) {
	if len(selection) == 0 {
		return c.Names(), nil
	}
	if missing := c.Missing(selection); len(missing) > 0 {
		return nil, fmt.Errorf("unknown buildings: %v", missing)
	}
	return append([]string(nil), selection...), nil
}
