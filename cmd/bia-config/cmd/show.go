package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
)

var showCmd = &cobra.Command{
	Use:   "show <section> <parameter>",
	Short: "Show one parameter in detail",
	Args:  cobra.ExactArgs(2),
	RunE:  showParameter,
}

func showParameter(cmd *cobra.Command, args []string) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	p, err := schema.Get(args[0], args[1])
	if err != nil {
		return err
	}

	value, err := p.Format(p.Value())
	if err != nil {
		return err
	}

	logger.LogKeyValue("Parameter", p.Section()+":"+p.Name())
	logger.LogKeyValue("Type", string(p.Kind()))
	logger.LogKeyValue("Value", value)
	logger.LogKeyValue("Default", p.RawDefault())
	if choices := p.Choices(); len(choices) > 0 {
		logger.LogKeyValue("Choices", strings.Join(choices, ", "))
	}
	if min, max := p.Bounds(); min != nil && max != nil {
		logger.LogKeyValue("Range", fmt.Sprintf("%g to %g", *min, *max))
	}
	if p.Help() != "" {
		logger.LogKeyValue("Help", p.Help())
	}
	return nil
}
