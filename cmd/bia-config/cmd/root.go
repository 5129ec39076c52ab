package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shizhongming/cea-plugin-bia/pkg/logger"
)

var (
	cfgFile     string
	scenarioDir string
	logLevel    string
	noColor     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bia-config",
	Short: "Building-integrated agriculture configuration tool",
	Long: `bia-config manages the typed parameter schema of the
building-integrated agriculture plugin: listing, validating, editing,
and persisting the settings a scenario's scripts consume.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "tool config file (default is $HOME/.bia-config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&scenarioDir, "scenario", "", "scenario directory (default is the current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(catalogCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	// Configure logger based on flags
	logger.SetLevel(logger.ParseLevel(logLevel))
	if noColor {
		logger.SetNoColor(true)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		viper.AddConfigPath("$HOME/.bia-config")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("CEA")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in
	_ = viper.ReadInConfig()

	if scenarioDir == "" {
		scenarioDir = viper.GetString("scenario")
	}
	if scenarioDir == "" {
		scenarioDir = "."
	}
}
