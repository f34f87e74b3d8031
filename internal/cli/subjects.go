package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/monorkin/bmi-tracker/internal/globals"
)

// subjectsCmd represents the subjects command
var subjectsCmd = &cobra.Command{
	Use:     "subjects",
	Aliases: []string{"who"},
	Short:   "List the subjects with recorded measurements",
	Long:    `List every distinct subject name in the history with its entry count.`,
	Run:     runSubjects,
}

func runSubjects(cmd *cobra.Command, args []string) {
	globals.Logger.Debug("Fetching subjects")

	entryStore, service := openStore()
	defer entryStore.Close()

	subjects, err := service.GetSubjects()
	if err != nil {
		globals.Logger.Error("Failed to fetch subjects", "error", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch subjects: %v\n", err)
		os.Exit(1)
	}

	if len(subjects) == 0 {
		fmt.Println("No entries found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "NAME\tENTRIES")
	fmt.Fprintln(w, "----\t-------")

	for _, subject := range subjects {
		fmt.Fprintf(w, "%s\t%d\n", subject.Name, subject.Entries)
	}

	globals.Logger.Debug("Subjects listed", "count", len(subjects))
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}
