package scripts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
)

// Run configures and executes a script against a scenario. Each run gets a
// fresh run ID carried on every log line.
func Run(ctx context.Context, s Script, values map[string]interface{}, scenarioDir string) error {
	runID := uuid.New().String()
	log := logger.WithPrefix(s.Name()).WithField("run", runID[:8])

	if err := s.Configure(values); err != nil {
		return fmt.Errorf("configuring script %s: %w", s.Name(), err)
	}

	log.Infof("Starting with scenario = %s", scenarioDir)
	start := time.Now()
	if err := s.Run(ctx, scenarioDir); err != nil {
		return fmt.Errorf("script %s failed: %w", s.Name(), err)
	}
	log.Infof("Done after %.2f seconds", time.Since(start).Seconds())
	return nil
}
