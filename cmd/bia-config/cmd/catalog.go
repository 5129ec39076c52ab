package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/shizhongming/cea-plugin-bia/pkg/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the zone building catalog",
	Long:  `Manage the building catalog a BuildingsParameter selection is checked against`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the buildings of the scenario",
	RunE:  listBuildings,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a building to the catalog",
	RunE:  addBuilding,
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a building from the catalog",
	RunE:  removeBuilding,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogRemoveCmd)
}

func listBuildings(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(scenarioDir)
	if err != nil {
		return err
	}

	if len(cat.Buildings) == 0 {
		fmt.Println("No buildings in the catalog")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tFLOORS\tHEIGHT (M)\tROOF AREA (M2)")
	_, _ = fmt.Fprintln(w, "----\t------\t----------\t--------------")

	for _, b := range cat.Buildings {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\n", b.Name, b.Floors, b.HeightM, b.RoofArea)
	}

	return w.Flush()
}

func addBuilding(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(scenarioDir)
	if err != nil {
		// Start a fresh catalog when the scenario has none yet
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cat = &catalog.Catalog{}
	}

	var b catalog.Building

	namePrompt := &survey.Input{
		Message: "Building name:",
	}
	if err := survey.AskOne(namePrompt, &b.Name, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if cat.Contains(b.Name) {
		return fmt.Errorf("building %s already in the catalog", b.Name)
	}

	floorsPrompt := &survey.Input{
		Message: "Number of floors:",
		Default: "1",
	}
	var floors string
	if err := survey.AskOne(floorsPrompt, &floors, survey.WithValidator(integerValidator)); err != nil {
		return err
	}
	b.Floors, _ = strconv.Atoi(floors)

	heightPrompt := &survey.Input{
		Message: "Building height in meters:",
		Default: "3.0",
	}
	var height string
	if err := survey.AskOne(heightPrompt, &height, survey.WithValidator(numericValidator)); err != nil {
		return err
	}
	b.HeightM, _ = strconv.ParseFloat(height, 64)

	roofPrompt := &survey.Input{
		Message: "Roof area in square meters:",
		Default: "0",
	}
	var roof string
	if err := survey.AskOne(roofPrompt, &roof, survey.WithValidator(numericValidator)); err != nil {
		return err
	}
	b.RoofArea, _ = strconv.ParseFloat(roof, 64)

	cat.Buildings = append(cat.Buildings, b)

	if err := catalog.Save(cat, scenarioDir); err != nil {
		return err
	}

	fmt.Printf("Building %s added to %s\n", b.Name, catalog.FileName)
	return nil
}

func removeBuilding(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(scenarioDir)
	if err != nil {
		return err
	}

	if len(cat.Buildings) == 0 {
		fmt.Println("No buildings to remove")
		return nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select building to remove:",
		Options: cat.Names(),
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return err
	}

	var confirm bool
	confirmPrompt := &survey.Confirm{
		Message: fmt.Sprintf("Are you sure you want to remove %s?", selected),
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirm); err != nil {
		return err
	}
	if !confirm {
		fmt.Println("Removal cancelled")
		return nil
	}

	remaining := make([]catalog.Building, 0, len(cat.Buildings)-1)
	for _, b := range cat.Buildings {
		if b.Name != selected {
			remaining = append(remaining, b)
		}
	}
	cat.Buildings = remaining

	if err := catalog.Save(cat, scenarioDir); err != nil {
		return err
	}

	fmt.Printf("Building %s removed\n", selected)
	return nil
}

func integerValidator(val interface{}) error {
	raw, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected a string answer")
	}
	if _, err := strconv.Atoi(raw); err != nil {
		return fmt.Errorf("%s is not an integer", raw)
	}
	return nil
}

func numericValidator(val interface{}) error {
	raw, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected a string answer")
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("%s is not numeric", raw)
	}
	return nil
}
