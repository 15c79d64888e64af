package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jobtrackr/jobtrackr/internal/backup"
	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export file",
	Long: `Import applications, tasks, and notes from a JSON export file. Records are
upserted by id, so re-importing the same file is safe: existing records are
overwritten in place and nothing is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}
		loc := application.Locale(cmd.Context())

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		snap, err := backup.Parse(data)
		if err != nil {
			if errors.Is(err, backup.ErrInvalidFormat) {
				return fmt.Errorf("%s: %w", i18n.T(loc).InvalidFile, err)
			}
			return err
		}

		// Failed records are reported but never abort the rest of the file.
		importErr := application.Store.ImportData(cmd.Context(), snap)

		cmd.Printf("✓ %s\n", i18n.T(loc).DataImported)
		cmd.Printf("  %d applications, %d tasks, %d notes processed\n",
			len(snap.Applications), len(snap.Tasks), len(snap.Notes))
		if importErr != nil {
			cmd.Printf("  some records failed: %v\n", importErr)
			return importErr
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
