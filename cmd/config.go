package cmd

import (
	"fmt"

	"github.com/jobtrackr/jobtrackr/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  "View and update the configuration file (data directory, fallback language)",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render("Configuration"))
		cmd.Printf("%s %s\n", labelStyle.Render("Config file:"), config.GetConfigPath())
		dataDir := application.Config.DataDir
		if dataDir == "" {
			dataDir = "(default)"
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Data directory:"), dataDir)
		cmd.Printf("%s %s\n", labelStyle.Render("Fallback language:"), application.Config.Language)
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  jobtrackr config set --key data_dir --value /srv/jobtrackr
  jobtrackr config set --key language --value en`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("both --key and --value are required")
		}
		if key != "data_dir" && key != "language" {
			return fmt.Errorf("unknown key %q (valid: data_dir, language)", key)
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		cmd.Printf("✓ %s updated\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "New value")
}
