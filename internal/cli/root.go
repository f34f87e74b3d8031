package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monorkin/bmi-tracker/internal/config"
	"github.com/monorkin/bmi-tracker/internal/globals"
	"github.com/monorkin/bmi-tracker/internal/history"
	"github.com/monorkin/bmi-tracker/internal/store"
	"github.com/monorkin/bmi-tracker/internal/version"
)

var (
	verbose bool
	dbPath  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "bmi-tracker",
	Short:   "BMI measurement history tracker",
	Version: version.GetVersion(),
	Long: `A local BMI measurement tracker.

Measurements are validated, classified against the WHO weight categories,
and appended to a local SQLite history. The history can be listed, reduced
to a per-subject trend series, and exported to CSV or XLSX.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		globals.Initialize(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the history database (default: data dir, or BMI_TRACKER_DB_PATH)")
}

// openStore opens the entry store the command will work against and wraps
// it in a history service. Exits the process on failure, like every other
// unrecoverable CLI error.
func openStore() (*store.EntryStore, *history.Service) {
	path := dbPath
	if path == "" {
		path = config.DBPath()
	}

	globals.Logger.Debug("Opening entry store", "path", path)

	entryStore, err := store.Open(path)
	if err != nil {
		globals.Logger.Error("Failed to open entry store", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to open history database: %v\n", err)
		os.Exit(1)
	}

	return entryStore, history.NewService(entryStore)
}
