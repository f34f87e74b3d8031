package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monorkin/bmi-tracker/internal/config"
	"github.com/monorkin/bmi-tracker/internal/globals"
)

var exportFormat string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the full history to a file",
	Long: `Export every recorded measurement to the given path.

The format is csv (header row id,name,weight,height,bmi,category,timestamp)
or xlsx. When --format is omitted, the default_export_format from the
settings file is used.

Examples:
  bmi-tracker export history.csv
  bmi-tracker export history.xlsx --format xlsx`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func runExport(cmd *cobra.Command, args []string) {
	path := args[0]

	format := exportFormat
	if format == "" {
		format = globals.Settings.DefaultExportFormat
	}

	globals.Logger.Debug("Exporting history", "path", path, "format", format)

	entryStore, service := openStore()
	defer entryStore.Close()

	var err error
	switch format {
	case config.ExportFormatCSV:
		err = service.ExportAll(path)
	case config.ExportFormatXLSX:
		err = service.ExportWorkbook(path)
	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown export format: %s (expected csv or xlsx)\n", format)
		os.Exit(1)
	}

	if err != nil {
		globals.Logger.Error("Failed to export history", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported history to %s\n", path)

	globals.Logger.Debug("Export completed", "path", path)
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: csv or xlsx (default: settings default_export_format)")
}
