package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monorkin/bmi-tracker/internal/globals"
)

// seriesCmd represents the series command
var seriesCmd = &cobra.Command{
	Use:   "series [name]",
	Short: "Get a subject's BMI trend series",
	Long: `Get the time-ordered (timestamp, bmi) series for a subject, oldest first,
as JSON. This is the feed a trend plotter consumes.

When no name is given, the default_subject from the settings file is used.

Examples:
  bmi-tracker series Bob
  bmi-tracker series`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSeries,
}

func runSeries(cmd *cobra.Command, args []string) {
	var name string
	if len(args) == 1 {
		name = args[0]
	} else if globals.Settings.DefaultSubject != nil {
		name = *globals.Settings.DefaultSubject
	}

	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: No subject given and no default_subject configured")
		os.Exit(1)
	}

	globals.Logger.Debug("Fetching series", "subject", name)

	entryStore, service := openStore()
	defer entryStore.Close()

	points, err := service.GetSubjectSeries(name)
	if err != nil {
		globals.Logger.Error("Failed to fetch series", "subject", name, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(points, "", "  ")
	if err != nil {
		globals.Logger.Error("Failed to marshal series", "error", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to format response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))

	globals.Logger.Debug("Series fetched", "subject", name, "points", len(points))
}

func init() {
	rootCmd.AddCommand(seriesCmd)
}
