package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jobtrackr/jobtrackr/internal/backup"
	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data to a file",
	Long: `Export applications, tasks, and notes to a JSON file, or applications only
to a CSV file. Settings are not exported.`,
	Example: `  jobtrackr export
  jobtrackr export --format csv
  jobtrackr export --out backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		if format != "json" && format != "csv" {
			return fmt.Errorf("invalid format %q (valid: json, csv)", format)
		}

		snap, err := application.Store.ExportData(cmd.Context())
		if err != nil {
			return fmt.Errorf("export data: %w", err)
		}

		loc := application.Locale(cmd.Context())
		var data []byte
		if format == "json" {
			if data, err = backup.MarshalJSON(snap); err != nil {
				return err
			}
		} else {
			data = backup.MarshalCSV(snap, loc)
		}

		if out == "" {
			out = backup.Filename(format, time.Now())
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}

		cmd.Printf("✓ %s → %s\n", i18n.T(loc).DataExported, out)
		if format == "csv" {
			cmd.Printf("  %d applications exported\n", len(snap.Applications))
		} else {
			cmd.Printf("  %d applications, %d tasks, %d notes\n",
				len(snap.Applications), len(snap.Tasks), len(snap.Notes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("format", "json", "Export format: json (everything) or csv (applications only)")
	exportCmd.Flags().String("out", "", "Output file (default jobtrackr-export-<date>.<format>)")
}
