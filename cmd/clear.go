package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all applications, tasks, and notes",
	Long: `Delete every application, task, and note. Preferences are kept.
This cannot be undone; export first if you want a backup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			cmd.Print("This permanently deletes all applications, tasks, and notes. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "y" && input != "yes" {
				cmd.Println("Aborted.")
				return nil
			}
		}

		if err := application.Store.ClearAllData(cmd.Context()); err != nil {
			return fmt.Errorf("clear data: %w", err)
		}

		loc := application.Locale(cmd.Context())
		cmd.Printf("✓ %s\n", i18n.T(loc).DataCleared)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
