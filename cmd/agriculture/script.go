package agriculture

import (
	"context"
	"fmt"

	"github.com/shizhongming/cea-plugin-bia/pkg/catalog"
	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
	"github.com/shizhongming/cea-plugin-bia/pkg/scripts"
)

// PotentialScript reports which building surfaces the agriculture settings
// select. It is the consumer-side demonstration of the validated parameter
// surface: the actual radiation and yield calculations live in the
// simulation engine, outside this tool.
type PotentialScript struct {
	config *Config
}

// NewPotentialScript creates a new instance of the script
func NewPotentialScript() scripts.Script {
	return &PotentialScript{}
}

// Name returns the script name
func (s *PotentialScript) Name() string {
	return "agriculture-potential"
}

// Description returns the script description
func (s *PotentialScript) Description() string {
	return "Reports the buildings and surface types selected for building-integrated agriculture"
}

// Configure hands the script its validated parameter values
func (s *PotentialScript) Configure(values map[string]interface{}) error {
	config, err := ValidateAndParse(values)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	s.config = config
	return nil
}

// Run resolves the building selection against the scenario's catalog and
// reports the effective settings.
func (s *PotentialScript) Run(ctx context.Context, scenarioDir string) error {
	cat, err := catalog.Load(scenarioDir)
	if err != nil {
		return err
	}

	// BuildingsParameter values are only checked against the catalog here,
	// on the consumer side.
	buildings, err := cat.Resolve(s.config.Buildings)
	if err != nil {
		return err
	}

	logger.Infof("Considering %d building(s) for %s", len(buildings), s.config.TypeCrop)
	logger.Infof("Radiation threshold = %g kWh/m2/yr", s.config.RadiationThreshold)

	for _, name := range buildings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		surfaces := s.surfacesFor()
		if len(surfaces) == 0 {
			logger.Warnf("Building %s has no surfaces enabled for crops", name)
			continue
		}
		logger.Infof("Building %s: crops on %v (roof coverage up to %.0f%%, wall coverage up to %.0f%%)",
			name, surfaces, s.config.MaxRoofCoverage*100, s.config.MaxWallCoverage*100)
	}

	return nil
}

func (s *PotentialScript) surfacesFor() []string {
	var surfaces []string
	if s.config.CropOnRoof {
		surfaces = append(surfaces, "roofs")
	}
	if s.config.CropOnWall {
		surfaces = append(surfaces, "walls")
	}
	if s.config.CropOnWindow {
		surfaces = append(surfaces, "windows")
	}
	return surfaces
}

func init() {
	if err := scripts.DefaultRegistry.Register("agriculture-potential", NewPotentialScript); err != nil {
		logger.Errorf("Failed to register agriculture-potential: %v", err)
	}
}
