package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shizhongming/cea-plugin-bia/pkg/config"
	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
	"github.com/shizhongming/cea-plugin-bia/pkg/params"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configuration parameters",
	Long:  `List every section and parameter with its type and current value`,
	RunE:  listParameters,
}

// loadSchema loads the scenario's configuration and reports any
// warning-severity violations picked up from the user config or environment.
func loadSchema() (*params.Schema, error) {
	schema, warnings, err := config.LoadScenario(scenarioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario configuration: %w", err)
	}
	for _, w := range warnings {
		logger.Warnf("%v", w)
	}
	return schema, nil
}

func listParameters(cmd *cobra.Command, args []string) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	// Create tabwriter for formatted output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SECTION\tPARAMETER\tTYPE\tVALUE")
	_, _ = fmt.Fprintln(w, "-------\t---------\t----\t-----")

	for _, sec := range schema.Sections() {
		for _, p := range sec.All() {
			value, err := p.Format(p.Value())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sec.Name(), p.Name(), p.Kind(), value)
		}
	}

	return w.Flush()
}
