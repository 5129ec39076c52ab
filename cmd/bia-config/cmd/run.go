package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
	"github.com/shizhongming/cea-plugin-bia/pkg/params"
	"github.com/shizhongming/cea-plugin-bia/pkg/scripts"

	// Import scripts to register them
	_ "github.com/shizhongming/cea-plugin-bia/cmd/agriculture"
)

//go:embed scripts.yml
var scriptsYML []byte

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a script",
	Long:  `Run a script against the scenario's configuration, interactively or by name`,
	RunE:  runScript,
}

func init() {
	runCmd.Flags().StringP("script", "s", "", "script name to run")
}

func runScript(cmd *cobra.Command, _ []string) error {
	metadata, err := scripts.LoadMetadata(scriptsYML)
	if err != nil {
		return err
	}

	schema, err := loadSchema()
	if err != nil {
		return err
	}

	// Out-of-range numeric values proceed with a warning; anything harder
	// blocks the run.
	failures := 0
	for _, v := range schema.Validate() {
		if v.Severity == params.SeverityWarning {
			logger.Warnf("%v", v)
			continue
		}
		logger.Errorf("%v", v)
		failures++
	}
	if failures > 0 {
		return fmt.Errorf("refusing to run with %d invalid parameter(s), fix them or use 'bia-config edit'", failures)
	}

	name, err := selectScript(cmd, metadata)
	if err != nil {
		return err
	}

	script, err := scripts.DefaultRegistry.Get(name)
	if err != nil {
		return err
	}

	meta, err := metadata.Get(name)
	if err != nil {
		return err
	}

	values, err := meta.CollectValues(schema)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		logger.Warn("\nReceived interrupt signal, stopping script...")
		cancel()
	}()

	logger.LogSection(fmt.Sprintf("Starting %s", meta.Label))
	if err := scripts.Run(ctx, script, values, scenarioDir); err != nil {
		return err
	}

	logger.Success("Script completed successfully")
	return nil
}

// selectScript resolves the script name from the -s flag, or prompts when
// the flag is absent. Only scripts both declared in scripts.yml and
// registered in the default registry are offered.
func selectScript(cmd *cobra.Command, metadata *scripts.File) (string, error) {
	if name, _ := cmd.Flags().GetString("script"); name != "" {
		return name, nil
	}

	registered := make(map[string]bool)
	for _, name := range scripts.DefaultRegistry.List() {
		registered[name] = true
	}

	var options []string
	labels := make(map[string]string)
	for _, m := range metadata.Scripts {
		if !registered[m.Name] {
			continue
		}
		label := fmt.Sprintf("%s - %s", m.Name, m.Label)
		options = append(options, label)
		labels[label] = m.Name
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no scripts available")
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select a script to run:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", fmt.Errorf("script selection cancelled: %w", err)
	}
	return labels[selected], nil
}
