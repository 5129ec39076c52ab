package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shizhongming/cea-plugin-bia/pkg/config"
	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
	"github.com/shizhongming/cea-plugin-bia/pkg/params"
)

var setCmd = &cobra.Command{
	Use:   "set <section> <parameter> <value>",
	Short: "Set a parameter value",
	Long:  `Validate a new value for one parameter and persist it to the scenario's config file`,
	Args:  cobra.ExactArgs(3),
	RunE:  setParameter,
}

func setParameter(cmd *cobra.Command, args []string) error {
	section, name, raw := args[0], args[1], args[2]

	schema, err := loadSchema()
	if err != nil {
		return err
	}

	p, err := schema.Get(section, name)
	if err != nil {
		return err
	}

	value, err := p.Parse(raw)
	if err != nil {
		if !params.IsWarning(err) {
			return err
		}
		logger.Warnf("%v", err)
	}
	if err := p.Set(value); err != nil && !params.IsWarning(err) {
		return err
	}

	if err := config.Save(schema, scenarioDir); err != nil {
		return err
	}

	text, err := p.Format(p.Value())
	if err != nil {
		return err
	}
	logger.Successf("%s:%s = %s", section, name, text)
	return nil
}
