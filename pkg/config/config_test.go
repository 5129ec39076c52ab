package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shizhongming/cea-plugin-bia/pkg/params"
)

func TestLoadDefault(t *testing.T) {
	schema, err := LoadDefault()
	if err != nil {
		t.Fatalf("Failed to load embedded default.config: %v", err)
	}

	agri, err := schema.Section("agriculture")
	if err != nil {
		t.Fatalf("agriculture section missing: %v", err)
	}
	if agri.Len() != 8 {
		t.Errorf("Expected 8 agriculture parameters, got %d", agri.Len())
	}

	profile, err := schema.Section("crop-profile")
	if err != nil {
		t.Fatalf("crop-profile section missing: %v", err)
	}
	if profile.Len() != 2 {
		t.Errorf("Expected 2 crop-profile parameters, got %d", profile.Len())
	}

	crop, _ := schema.Get("agriculture", "type-crop")
	if crop.Default() != "AmaranthRed" {
		t.Errorf("type-crop default = %v, expected AmaranthRed", crop.Default())
	}
}

func TestDocumentedBoundsAreAttached(t *testing.T) {
	schema, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}

	coverage, _ := schema.Get("agriculture", "max-roof-coverage")
	v, err := coverage.Parse("1.5")
	if err == nil {
		t.Fatal("Parse(1.5) should report a bound violation, the documented range is 0 to 1")
	}
	if !params.IsWarning(err) {
		t.Errorf("Bound violation should be warning severity, got %v", err)
	}
	if v != 1.5 {
		t.Errorf("Value should still be returned, got %v", v)
	}

	// The threshold has no documented range.
	threshold, _ := schema.Get("agriculture", "annual-radiation-threshold-BIA")
	if _, err := threshold.Parse("99999"); err != nil {
		t.Errorf("Unbounded parameter rejected a large value: %v", err)
	}
}

func TestApplyValuesOverridesDefaults(t *testing.T) {
	schema, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}

	userConfig := `[agriculture]
type-crop = Tomato
crop-on-roof = False
buildings = B1001, B1002
`
	warnings, err := ApplyValues(schema, userConfig)
	if err != nil {
		t.Fatalf("ApplyValues failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", warnings)
	}

	crop, _ := schema.Get("agriculture", "type-crop")
	if crop.Value() != "Tomato" {
		t.Errorf("type-crop = %v, expected Tomato", crop.Value())
	}
	if crop.Default() != "AmaranthRed" {
		t.Errorf("Overlay must not change the default, got %v", crop.Default())
	}

	roof, _ := schema.Get("agriculture", "crop-on-roof")
	if roof.Value() != false {
		t.Errorf("crop-on-roof = %v, expected false", roof.Value())
	}
}

func TestApplyValuesAggregatesFailures(t *testing.T) {
	schema, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}

	userConfig := `[agriculture]
type-crop = Cabbage
unknown-setting = 1
max-roof-coverage = 1.5
crop-on-roof.type = BooleanParameter
`
	warnings, err := ApplyValues(schema, userConfig)
	if err == nil {
		t.Fatal("ApplyValues should fail on unknown keys and invalid values")
	}

	msg := err.Error()
	for _, fragment := range []string{"Cabbage", "unknown-setting", "attribute lines"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("Aggregated error should mention %q: %v", fragment, msg)
		}
	}

	// The out-of-range coverage is a warning, applied anyway.
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(warnings))
	}
	coverage, _ := schema.Get("agriculture", "max-roof-coverage")
	if coverage.Value() != 1.5 {
		t.Errorf("Warning-severity value should still be applied, got %v", coverage.Value())
	}
}

func TestLoadScenarioOverlayAndEnv(t *testing.T) {
	dir := t.TempDir()
	userConfig := `[agriculture]
type-crop = XiaoBaiCai
`
	if err := os.WriteFile(filepath.Join(dir, UserConfigName), []byte(userConfig), 0644); err != nil {
		t.Fatalf("Failed to write user config: %v", err)
	}

	// Environment overrides take precedence over the user file.
	t.Setenv("CEA_AGRICULTURE_CROP_ON_WINDOW", "true")

	schema, warnings, err := LoadScenario(dir)
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", warnings)
	}

	crop, _ := schema.Get("agriculture", "type-crop")
	if crop.Value() != "XiaoBaiCai" {
		t.Errorf("type-crop = %v, expected XiaoBaiCai from the user file", crop.Value())
	}
	window, _ := schema.Get("agriculture", "crop-on-window")
	if window.Value() != true {
		t.Errorf("crop-on-window = %v, expected true from the environment", window.Value())
	}
}

func TestLoadScenarioWithoutUserConfig(t *testing.T) {
	schema, warnings, err := LoadScenario(t.TempDir())
	if err != nil {
		t.Fatalf("LoadScenario on an empty scenario failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", warnings)
	}
	crop, _ := schema.Get("agriculture", "type-crop")
	if crop.Value() != "AmaranthRed" {
		t.Errorf("Empty scenario should keep defaults, got %v", crop.Value())
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	schema, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	crop, _ := schema.Get("agriculture", "type-crop")
	if err := crop.Set("Lettuce"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := Save(schema, dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, _, err := LoadScenario(dir)
	if err != nil {
		t.Fatalf("LoadScenario after Save failed: %v", err)
	}
	p, _ := reloaded.Get("agriculture", "type-crop")
	if p.Value() != "Lettuce" {
		t.Errorf("Reloaded type-crop = %v, expected Lettuce", p.Value())
	}
}

func TestEnvKey(t *testing.T) {
	if key := EnvKey("agriculture", "type-crop"); key != "CEA_AGRICULTURE_TYPE_CROP" {
		t.Errorf("EnvKey = %q", key)
	}
	if key := EnvKey("crop-profile", "types-crop"); key != "CEA_CROP_PROFILE_TYPES_CROP" {
		t.Errorf("EnvKey = %q", key)
	}
}
