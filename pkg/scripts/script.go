package scripts

import (
	"context"
)

// Script defines the interface every runnable script of the plugin
// implements. Scripts are pure consumers of validated parameter values: the
// hosting tool loads and validates the schema, halts on any hard error, and
// only then hands the values over.
type Script interface {
	// Name returns the registered script name
	Name() string

	// Description returns a brief description of what the script does
	Description() string

	// Configure hands the script its validated parameter values, keyed
	// "section:name"
	Configure(values map[string]interface{}) error

	// Run executes the script against a scenario directory
	Run(ctx context.Context, scenarioDir string) error
}
