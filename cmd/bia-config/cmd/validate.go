package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
	"github.com/shizhongming/cea-plugin-bia/pkg/params"
)

var strictBounds bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the scenario's configuration",
	Long: `Validate every parameter's current value against its constraints.
Hard violations fail the command; out-of-range numeric values are reported
as warnings unless --strict is set.`,
	RunE: validateParameters,
}

func init() {
	validateCmd.Flags().BoolVar(&strictBounds, "strict", false, "treat out-of-range values as errors")
}

func validateParameters(cmd *cobra.Command, args []string) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	total := 0
	for _, sec := range schema.Sections() {
		total += sec.Len()
	}

	violations := schema.Validate()
	failures := 0
	for _, verr := range violations {
		if verr.Severity == params.SeverityWarning && !strictBounds {
			logger.Warnf("%v", verr)
			continue
		}
		failures++
		logger.Errorf("%v", verr)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d parameters invalid", failures, total)
	}
	if len(violations) > 0 {
		logger.Successf("%d parameters valid, %d warning(s)", total, len(violations))
	} else {
		logger.Successf("All %d parameters valid", total)
	}
	return nil
}
