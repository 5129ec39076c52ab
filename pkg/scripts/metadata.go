package scripts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shizhongming/cea-plugin-bia/pkg/params"
)

// Metadata describes a script declared in scripts.yml: its label for
// listings and the parameters it consumes, referenced as "section:name".
type Metadata struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label"`
	Description string   `yaml:"description"`
	Parameters  []string `yaml:"parameters"`
}

// File is the scripts.yml document structure.
type File struct {
	Scripts []Metadata `yaml:"scripts"`
}

// LoadMetadata parses a scripts.yml document.
func LoadMetadata(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scripts.yml: %w", err)
	}

	seen := make(map[string]bool)
	for _, m := range f.Scripts {
		if m.Name == "" {
			return nil, fmt.Errorf("scripts.yml: script with empty name")
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("scripts.yml: duplicate script name %s", m.Name)
		}
		seen[m.Name] = true
	}
	return &f, nil
}

// LoadMetadataFile reads and parses a scripts.yml file.
func LoadMetadataFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return LoadMetadata(data)
}

// Get returns the metadata of the named script.
func (f *File) Get(name string) (*Metadata, error) {
	for i := range f.Scripts {
		if f.Scripts[i].Name == name {
			return &f.Scripts[i], nil
		}
	}
	return nil, fmt.Errorf("script %s not declared in scripts.yml", name)
}

// ResolveParameters resolves the metadata's parameter references against a
// schema, in declaration order. A dangling reference surfaces the schema's
// NotFoundError.
func (m *Metadata) ResolveParameters(schema *params.Schema) ([]*params.Parameter, error) {
	resolved := make([]*params.Parameter, 0, len(m.Parameters))
	for _, ref := range m.Parameters {
		section, name, found := strings.Cut(ref, ":")
		if !found {
			return nil, fmt.Errorf("script %s: malformed parameter reference %q, expected section:name", m.Name, ref)
		}
		p, err := schema.Get(section, name)
		if err != nil {
			return nil, fmt.Errorf("script %s: %w", m.Name, err)
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}

// CollectValues resolves the metadata's parameters and returns their current
// values keyed "section:name", the shape Script.Configure consumes.
func (m *Metadata) CollectValues(schema *params.Schema) (map[string]interface{}, error) {
	resolved, err := m.ResolveParameters(schema)
	if err != nil {
		return nil, err
	}
	values := make(map[string]interface{}, len(resolved))
	for _, p := range resolved {
		values[p.Section()+":"+p.Name()] = p.Value()
	}
	return values, nil
}
