// Package config is the file-reading collaborator of the parameter core: it
// owns the plugin's shipped default schema, the scenario-local user config,
// and environment variable overrides. The params package itself never touches
// the filesystem.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shizhongming/cea-plugin-bia/pkg/params"
)

//go:embed default.config
var defaultConfig string

// UserConfigName is the name of the scenario-local value file.
const UserConfigName = "bia.config"

// EnvPrefix is the prefix of environment variable overrides, e.g.
// CEA_AGRICULTURE_TYPE_CROP for agriculture:type-crop.
const EnvPrefix = "CEA"

// documentedBounds carries the numeric ranges the schema declares in help
// text only; the text format has no bounds syntax, so they are attached here
// after loading.
var documentedBounds = map[string]map[string][2]float64{
	"agriculture": {
		"max-roof-coverage": {0, 1},
		"max-wall-coverage": {0, 1},
	},
}

// LoadDefault loads the plugin's embedded default schema with the documented
// bounds attached.
func LoadDefault() (*params.Schema, error) {
	schema, err := params.Load(defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("loading embedded default.config: %w", err)
	}
	if err := attachBounds(schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// LoadScenario loads the default schema, overlays the scenario's user config
// file when one exists, and applies environment overrides. Warning-severity
// violations from overlaid values are returned for the caller to report; hard
// violations fail the load.
func LoadScenario(scenarioDir string) (*params.Schema, []*params.ValidationError, error) {
	schema, err := LoadDefault()
	if err != nil {
		return nil, nil, err
	}

	var warnings []*params.ValidationError

	userPath := filepath.Join(scenarioDir, UserConfigName)
	if data, err := os.ReadFile(userPath); err == nil {
		warns, err := ApplyValues(schema, string(data))
		if err != nil {
			return nil, nil, fmt.Errorf("applying %s: %w", userPath, err)
		}
		warnings = append(warnings, warns...)
	} else if !os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("reading %s: %w", userPath, err)
	}

	warns, err := ApplyEnvironment(schema)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, warns...)

	return schema, warnings, nil
}

// ApplyValues overlays bare "key = value" lines, grouped under [section]
// headers, onto an already loaded schema. Attribute lines (.type, .choices,
// .help) are not accepted here: the user file carries values only, the
// embedded schema owns the declarations. Hard violations across all lines are
// aggregated into the returned error.
func ApplyValues(schema *params.Schema, text string) ([]*params.ValidationError, error) {
	var (
		warnings []*params.ValidationError
		failures []error
		section  string
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if section == "" {
			failures = append(failures, fmt.Errorf("value outside section: %s", key))
			continue
		}
		if strings.Contains(key, ".") {
			failures = append(failures, fmt.Errorf("%s:%s: attribute lines are not allowed in the user config", section, key))
			continue
		}

		if err := setFromText(schema, section, key, value); err != nil {
			if params.IsWarning(err) {
				var verr *params.ValidationError
				errors.As(err, &verr)
				warnings = append(warnings, verr)
				continue
			}
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return warnings, errors.Join(failures...)
	}
	return warnings, nil
}

// ApplyEnvironment overrides parameter values from CEA_<SECTION>_<NAME>
// environment variables.
func ApplyEnvironment(schema *params.Schema) ([]*params.ValidationError, error) {
	var (
		warnings []*params.ValidationError
		failures []error
	)

	for _, sec := range schema.Sections() {
		for _, p := range sec.All() {
			value, ok := os.LookupEnv(EnvKey(sec.Name(), p.Name()))
			if !ok {
				continue
			}
			if err := setFromText(schema, sec.Name(), p.Name(), value); err != nil {
				if params.IsWarning(err) {
					var verr *params.ValidationError
					errors.As(err, &verr)
					warnings = append(warnings, verr)
					continue
				}
				failures = append(failures, err)
			}
		}
	}

	if len(failures) > 0 {
		return warnings, errors.Join(failures...)
	}
	return warnings, nil
}

// EnvKey returns the environment variable name overriding a parameter.
func EnvKey(section, name string) string {
	upper := func(s string) string {
		return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	}
	return EnvPrefix + "_" + upper(section) + "_" + upper(name)
}

// Save writes the schema's current values into the scenario's user config
// file, in the values-only shape ApplyValues reads back. The declarations
// (.type, .choices, .help) stay in the embedded default.config.
func Save(schema *params.Schema, scenarioDir string) error {
	text, err := SerializeValues(schema)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.MkdirAll(scenarioDir, 0755); err != nil {
		return fmt.Errorf("creating scenario directory: %w", err)
	}
	path := filepath.Join(scenarioDir, UserConfigName)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SerializeValues renders the current values only, one [section] header and
// bare key = value lines per section.
func SerializeValues(schema *params.Schema) (string, error) {
	var sb strings.Builder
	for i, sec := range schema.Sections() {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[%s]\n", sec.Name())
		for _, p := range sec.All() {
			value, err := p.Format(p.Value())
			if err != nil {
				return "", fmt.Errorf("serializing %s:%s: %w", sec.Name(), p.Name(), err)
			}
			fmt.Fprintf(&sb, "%s = %s\n", p.Name(), value)
		}
	}
	return sb.String(), nil
}

func setFromText(schema *params.Schema, section, name, raw string) error {
	p, err := schema.Get(section, name)
	if err != nil {
		return err
	}
	value, err := p.Parse(raw)
	if err != nil && !params.IsWarning(err) {
		return err
	}
	warn := err
	if err := p.Set(value); err != nil && !params.IsWarning(err) {
		return err
	}
	return warn
}

func attachBounds(schema *params.Schema) error {
	for section, names := range documentedBounds {
		for name, bounds := range names {
			p, err := schema.Get(section, name)
			if err != nil {
				return fmt.Errorf("attaching documented bounds: %w", err)
			}
			if err := p.SetBounds(bounds[0], bounds[1]); err != nil {
				return err
			}
		}
	}
	return nil
}
