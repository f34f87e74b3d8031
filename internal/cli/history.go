package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/monorkin/bmi-tracker/internal/globals"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls", "h"},
	Short:   "List the full measurement history",
	Long:    `List every recorded measurement, newest first, with its BMI and WHO category.`,
	Run:     runHistory,
}

func runHistory(cmd *cobra.Command, args []string) {
	globals.Logger.Debug("Fetching history")

	entryStore, service := openStore()
	defer entryStore.Close()

	entries, err := service.GetHistory()
	if err != nil {
		globals.Logger.Error("Failed to fetch history", "error", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch history: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	// Create tabwriter for aligned output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	// Print header
	fmt.Fprintln(w, "ID\tNAME\tWEIGHT\tHEIGHT\tBMI\tCATEGORY\tTIMESTAMP")
	fmt.Fprintln(w, "--\t----\t------\t------\t---\t--------\t---------")

	// Print entries
	for _, entry := range entries {
		fmt.Fprintf(w, "%d\t%s\t%g\t%g\t%.2f\t%s\t%s\n",
			entry.ID,
			entry.Name,
			entry.Weight,
			entry.Height,
			entry.BMI,
			entry.Category,
			entry.Timestamp,
		)
	}

	globals.Logger.Debug("History listed", "count", len(entries))
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
