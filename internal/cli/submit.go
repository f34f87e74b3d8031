package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monorkin/bmi-tracker/internal/globals"
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:     "submit <name> <weight_kg> <height_m>",
	Aliases: []string{"add", "s"},
	Short:   "Record a new BMI measurement",
	Long: `Validate a measurement, compute its BMI and WHO category, and append it
to the history.

Examples:
  bmi-tracker submit Bob 70 1.75
  bmi-tracker submit "Alice Smith" 62.5 1.68`,
	Args: cobra.ExactArgs(3),
	Run:  runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) {
	name, weightText, heightText := args[0], args[1], args[2]
	globals.Logger.Debug("Submitting measurement", "name", name, "weight", weightText, "height", heightText)

	entryStore, service := openStore()
	defer entryStore.Close()

	entry, err := service.SubmitMeasurement(name, weightText, heightText)
	if err != nil {
		globals.Logger.Error("Failed to submit measurement", "name", name, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		globals.Logger.Error("Failed to marshal entry", "error", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to format response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))

	globals.Logger.Debug("Measurement submitted", "id", entry.ID, "bmi", entry.BMI, "category", entry.Category)
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
