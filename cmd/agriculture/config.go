package agriculture

import (
	"fmt"
)

// Config holds the validated agriculture settings the script consumes.
type Config struct {
	Buildings          []string
	CropOnRoof         bool
	CropOnWall         bool
	CropOnWindow       bool
	RadiationThreshold float64
	TypeCrop           string
	MaxRoofCoverage    float64
	MaxWallCoverage    float64
}

// ValidateAndParse maps the "section:name" keyed values handed over by the
// hosting tool into a Config. The values were already validated against the
// schema; the checks here guard against wiring mistakes, not user input.
func ValidateAndParse(values map[string]interface{}) (*Config, error) {
	config := &Config{}

	buildings, err := stringList(values, "agriculture:buildings")
	if err != nil {
		return nil, err
	}
	config.Buildings = buildings

	if config.CropOnRoof, err = boolean(values, "agriculture:crop-on-roof"); err != nil {
		return nil, err
	}
	if config.CropOnWall, err = boolean(values, "agriculture:crop-on-wall"); err != nil {
		return nil, err
	}
	if config.CropOnWindow, err = boolean(values, "agriculture:crop-on-window"); err != nil {
		return nil, err
	}
	if config.RadiationThreshold, err = real(values, "agriculture:annual-radiation-threshold-BIA"); err != nil {
		return nil, err
	}
	if config.MaxRoofCoverage, err = real(values, "agriculture:max-roof-coverage"); err != nil {
		return nil, err
	}
	if config.MaxWallCoverage, err = real(values, "agriculture:max-wall-coverage"); err != nil {
		return nil, err
	}

	crop, ok := values["agriculture:type-crop"].(string)
	if !ok {
		return nil, fmt.Errorf("agriculture:type-crop must be a string")
	}
	config.TypeCrop = crop

	if !config.CropOnRoof && !config.CropOnWall && !config.CropOnWindow {
		return nil, fmt.Errorf("at least one of crop-on-roof, crop-on-wall, crop-on-window must be enabled")
	}

	return config, nil
}

func boolean(values map[string]interface{}, key string) (bool, error) {
	b, ok := values[key].(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b, nil
}

func real(values map[string]interface{}, key string) (float64, error) {
	f, ok := values[key].(float64)
	if !ok {
		return 0, fmt.Errorf("%s must be numeric", key)
	}
	return f, nil
}

func stringList(values map[string]interface{}, key string) ([]string, error) {
	list, ok := values[key].([]string)
	if !ok {
		return nil, fmt.Errorf("%s must be a list of identifiers", key)
	}
	return list, nil
}
