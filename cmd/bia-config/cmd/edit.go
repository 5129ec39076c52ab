package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/shizhongming/cea-plugin-bia/pkg/config"
	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
	"github.com/shizhongming/cea-plugin-bia/pkg/params"
)

var editCmd = &cobra.Command{
	Use:   "edit [section]",
	Short: "Edit parameters interactively",
	Long:  `Walk through the parameters of a section with interactive prompts and persist the answers`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  editParameters,
}

func editParameters(cmd *cobra.Command, args []string) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var section *params.Section
	if len(args) == 1 {
		section, err = schema.Section(args[0])
		if err != nil {
			return err
		}
	} else {
		names := make([]string, 0, len(schema.Sections()))
		for _, s := range schema.Sections() {
			names = append(names, s.Name())
		}
		var selected string
		prompt := &survey.Select{
			Message: "Select a section to edit:",
			Options: names,
		}
		if err := survey.AskOne(prompt, &selected); err != nil {
			return fmt.Errorf("section selection cancelled: %w", err)
		}
		section, err = schema.Section(selected)
		if err != nil {
			return err
		}
	}

	logger.LogSection(fmt.Sprintf("Editing [%s]", section.Name()))

	changed := 0
	for _, p := range section.All() {
		value, edited, err := promptParameter(p)
		if err != nil {
			return err
		}
		if !edited {
			continue
		}
		if err := p.Set(value); err != nil {
			if !params.IsWarning(err) {
				return err
			}
			logger.Warnf("%v", err)
		}
		changed++
	}

	if changed == 0 {
		logger.Info("No changes made")
		return nil
	}

	if err := config.Save(schema, scenarioDir); err != nil {
		return err
	}
	logger.Successf("Saved %d parameter(s) to %s", changed, config.UserConfigName)
	return nil
}

// promptParameter asks for a new value with a prompt suited to the
// parameter kind. The second return is false when the answer leaves the
// current value untouched.
func promptParameter(p *params.Parameter) (interface{}, bool, error) {
	message := p.Name()
	if p.Help() != "" {
		message = fmt.Sprintf("%s (%s)", p.Name(), p.Help())
	}

	current, err := p.Format(p.Value())
	if err != nil {
		return nil, false, err
	}

	switch p.Kind() {
	case params.KindBoolean:
		result := p.Value().(bool)
		prompt := &survey.Confirm{
			Message: message,
			Default: result,
		}
		if err := survey.AskOne(prompt, &result); err != nil {
			return nil, false, fmt.Errorf("prompt cancelled: %w", err)
		}
		return result, true, nil

	case params.KindChoice:
		var selected string
		prompt := &survey.Select{
			Message: message,
			Options: p.Choices(),
			Default: current,
		}
		if err := survey.AskOne(prompt, &selected); err != nil {
			return nil, false, fmt.Errorf("prompt cancelled: %w", err)
		}
		return selected, true, nil

	case params.KindMultiChoice:
		selected := p.Value().([]string)
		prompt := &survey.MultiSelect{
			Message: message,
			Options: p.Choices(),
			Default: selected,
		}
		if err := survey.AskOne(prompt, &selected); err != nil {
			return nil, false, fmt.Errorf("prompt cancelled: %w", err)
		}
		return selected, true, nil

	default:
		var answer string
		prompt := &survey.Input{
			Message: message,
			Default: current,
		}
		validator := func(val interface{}) error {
			raw, ok := val.(string)
			if !ok {
				return fmt.Errorf("expected a string answer")
			}
			if _, err := p.Parse(raw); err != nil && !params.IsWarning(err) {
				return err
			}
			return nil
		}
		if err := survey.AskOne(prompt, &answer, survey.WithValidator(validator)); err != nil {
			return nil, false, fmt.Errorf("prompt cancelled: %w", err)
		}
		if answer == current {
			return nil, false, nil
		}
		value, err := p.Parse(answer)
		if err != nil && !params.IsWarning(err) {
			return nil, false, err
		}
		return value, true, nil
	}
}
