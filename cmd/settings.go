package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage preferences",
	Long:  "View and update theme, language, autosave, and onboarding preferences",
}

var showSettingsCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		settings, err := application.Store.GetSettings(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch settings: %w", err)
		}

		cmd.Println(titleStyle.Render("Preferences"))
		cmd.Printf("%s %s\n", labelStyle.Render("Theme:"), settings.Theme)
		cmd.Printf("%s %s\n", labelStyle.Render("Language:"), settings.Language)
		cmd.Printf("%s %t\n", labelStyle.Render("Auto-save:"), settings.AutoSave)
		cmd.Printf("%s %t\n", labelStyle.Render("Onboarding completed:"), settings.OnboardingCompleted)
		return nil
	},
}

var setSettingsCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a preference",
	Example: `  jobtrackr settings set theme dark
  jobtrackr settings set language en
  jobtrackr settings set autosave false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		settings, err := application.Store.GetSettings(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch settings: %w", err)
		}

		key, value := args[0], args[1]
		switch key {
		case "theme":
			if value != "light" && value != "dark" {
				return fmt.Errorf("theme must be light or dark")
			}
			settings.Theme = value
		case "language":
			if value != "fr" && value != "en" {
				return fmt.Errorf("language must be fr or en")
			}
			settings.Language = value
		case "autosave":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("autosave must be true or false")
			}
			settings.AutoSave = b
		case "onboarding":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("onboarding must be true or false")
			}
			settings.OnboardingCompleted = b
		default:
			return fmt.Errorf("unknown key %q (valid: theme, language, autosave, onboarding)", key)
		}

		if err := application.Store.UpdateSettings(cmd.Context(), settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		cmd.Printf("✓ %s set to %s\n", key, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(showSettingsCmd)
	settingsCmd.AddCommand(setSettingsCmd)
}
