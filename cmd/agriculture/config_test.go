package agriculture

import (
	"strings"
	"testing"
)

func validValues() map[string]interface{} {
	return map[string]interface{}{
		"agriculture:buildings":                      []string{},
		"agriculture:crop-on-roof":                   true,
		"agriculture:crop-on-wall":                   true,
		"agriculture:crop-on-window":                 false,
		"agriculture:annual-radiation-threshold-BIA": 800.0,
		"agriculture:type-crop":                      "AmaranthRed",
		"agriculture:max-roof-coverage":              0.8,
		"agriculture:max-wall-coverage":              0.8,
	}
}

func TestValidateAndParse(t *testing.T) {
	config, err := ValidateAndParse(validValues())
	if err != nil {
		t.Fatalf("ValidateAndParse failed: %v", err)
	}

	if !config.CropOnRoof || !config.CropOnWall || config.CropOnWindow {
		t.Errorf("surface flags not carried over: %+v", config)
	}
	if config.RadiationThreshold != 800.0 {
		t.Errorf("expected threshold 800, got %g", config.RadiationThreshold)
	}
	if config.TypeCrop != "AmaranthRed" {
		t.Errorf("expected crop AmaranthRed, got %s", config.TypeCrop)
	}
	if len(config.Buildings) != 0 {
		t.Errorf("expected empty building selection, got %v", config.Buildings)
	}
}

func TestValidateAndParseBuildingSelection(t *testing.T) {
	values := validValues()
	values["agriculture:buildings"] = []string{"B1001", "B1002"}

	config, err := ValidateAndParse(values)
	if err != nil {
		t.Fatalf("ValidateAndParse failed: %v", err)
	}
	if len(config.Buildings) != 2 || config.Buildings[0] != "B1001" {
		t.Errorf("unexpected building selection: %v", config.Buildings)
	}
}

func TestValidateAndParseWrongType(t *testing.T) {
	values := validValues()
	values["agriculture:crop-on-roof"] = "True"

	if _, err := ValidateAndParse(values); err == nil {
		t.Error("expected error for string where boolean required")
	} else if !strings.Contains(err.Error(), "crop-on-roof") {
		t.Errorf("error should name the offending key, got: %v", err)
	}
}

func TestValidateAndParseMissingKey(t *testing.T) {
	values := validValues()
	delete(values, "agriculture:max-wall-coverage")

	if _, err := ValidateAndParse(values); err == nil {
		t.Error("expected error for missing value")
	}
}

func TestValidateAndParseAllSurfacesDisabled(t *testing.T) {
	values := validValues()
	values["agriculture:crop-on-roof"] = false
	values["agriculture:crop-on-wall"] = false
	values["agriculture:crop-on-window"] = false

	if _, err := ValidateAndParse(values); err == nil {
		t.Error("expected error when no surface is enabled")
	} else if !strings.Contains(err.Error(), "at least one") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigureRejectsBadValues(t *testing.T) {
	s := NewPotentialScript()
	values := validValues()
	values["agriculture:type-crop"] = 42

	if err := s.Configure(values); err == nil {
		t.Error("expected Configure to surface the validation error")
	}
}
