package cmd

import (
	"fmt"

	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/jobtrackr/jobtrackr/internal/sample"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample data",
	Long:  "Load a demo set of applications, tasks, and notes to explore the tracker",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		// Refuse to mix demo records into real data unless forced.
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			apps, err := application.Store.ListApplications(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch applications: %w", err)
			}
			if len(apps) > 0 {
				cmd.Println("Store already contains applications; use --force to seed anyway.")
				return nil
			}
		}

		snap := sample.Snapshot()
		if err := application.Store.ImportData(cmd.Context(), snap); err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}

		loc := application.Locale(cmd.Context())
		cmd.Printf("✓ %s (%d applications, %d tasks, %d notes)\n", i18n.T(loc).SampleDataAdded,
			len(snap.Applications), len(snap.Tasks), len(snap.Notes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("force", false, "Seed even if data already exists")
}
