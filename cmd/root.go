package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jobtrackr/jobtrackr/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobtrackr",
	Short: "Local job application tracker",
	Long: `JobTrackr is a CLI for tracking job applications, tasks, and notes.
Everything is stored locally in a SQLite database; there is no server and no
network access. Data can be exported to JSON or CSV and re-imported at any time.`,
	Version: "1.0.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if application := app.GetAppFromContext(cmd.Context()); application != nil {
			return application.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fromContext pulls the initialized App out of a command, failing loudly
// when a command runs without the root PersistentPreRunE.
func fromContext(cmd *cobra.Command) (*app.App, error) {
	application := app.GetAppFromContext(cmd.Context())
	if application == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return application, nil
}
