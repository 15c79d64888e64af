package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jobtrackr/jobtrackr/internal/database"
	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/jobtrackr/jobtrackr/pkg/models"
	"github.com/spf13/cobra"
)

var applicationCmd = &cobra.Command{
	Use:     "application",
	Aliases: []string{"app"},
	Short:   "Manage job applications",
	Long:    "Add, list, view, update, and remove job applications",
}

var addApplicationCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job application",
	Example: `  jobtrackr application add --title "Frontend Developer" --company "Tech Corp"
  jobtrackr application add --title "SRE" --company "Acme" --status interview --tags "Remote,Cloud"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		company, _ := cmd.Flags().GetString("company")
		status, _ := cmd.Flags().GetString("status")
		date, _ := cmd.Flags().GetString("date")
		notes, _ := cmd.Flags().GetString("notes")
		tags, _ := cmd.Flags().GetString("tags")

		if title == "" || company == "" {
			return fmt.Errorf("both --title and --company are required")
		}
		if !models.ApplicationStatus(status).Valid() {
			return fmt.Errorf("invalid status %q (valid: %s)", status, statusList())
		}
		if date == "" {
			date = today()
		}

		now := nowISO()
		record := models.Application{
			ID:              newID("app"),
			JobTitle:        title,
			Company:         company,
			Status:          models.ApplicationStatus(status),
			ApplicationDate: date,
			Notes:           notes,
			Tags:            splitTags(tags),
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := application.Store.AddApplication(cmd.Context(), record); err != nil {
			return fmt.Errorf("save application: %w", err)
		}

		cmd.Printf("✓ Application added: %s at %s (ID: %s)\n", record.JobTitle, record.Company, record.ID)
		return nil
	},
}

var listApplicationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		apps, err := application.Store.ListApplications(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch applications: %w", err)
		}

		loc := application.Locale(cmd.Context())
		filterStatus, _ := cmd.Flags().GetString("status")
		if filterStatus != "" {
			filtered := apps[:0]
			for _, app := range apps {
				if string(app.Status) == filterStatus {
					filtered = append(filtered, app)
				}
			}
			apps = filtered
		}

		if len(apps) == 0 {
			cmd.Println(i18n.T(loc).NoApplications)
			return nil
		}

		// Newest application date first
		sort.Slice(apps, func(i, j int) bool {
			return apps[i].ApplicationDate > apps[j].ApplicationDate
		})

		cmd.Println(titleStyle.Render("Applications"))
		for i, app := range apps {
			cmd.Printf("\n%s. %s\n", labelStyle.Render(fmt.Sprintf("%d", i+1)), app.JobTitle)
			cmd.Printf("   %s %s\n", labelStyle.Render("Company:"), app.Company)
			cmd.Printf("   %s %s\n", labelStyle.Render("Status:"), i18n.StatusLabel(loc, app.Status))
			cmd.Printf("   %s %s\n", labelStyle.Render("Date:"), app.ApplicationDate)
			if len(app.Tags) > 0 {
				cmd.Printf("   %s %s\n", labelStyle.Render("Tags:"), strings.Join(app.Tags, ", "))
			}
			cmd.Printf("   %s %s\n", labelStyle.Render("ID:"), app.ID)
		}
		return nil
	},
}

var showApplicationCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of a specific application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		app, err := findApplication(cmd, args[0])
		if err != nil {
			return err
		}
		loc := application.Locale(cmd.Context())

		cmd.Println(titleStyle.Render(app.JobTitle))
		cmd.Printf("%s %s\n", labelStyle.Render("Company:"), app.Company)
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), i18n.StatusLabel(loc, app.Status))
		cmd.Printf("%s %s\n", labelStyle.Render("Applied:"), app.ApplicationDate)
		if len(app.Tags) > 0 {
			cmd.Printf("%s %s\n", labelStyle.Render("Tags:"), strings.Join(app.Tags, ", "))
		}
		if app.Notes != "" {
			cmd.Println(labelStyle.Render("\nNotes:"))
			cmd.Println(valueStyle.Render(app.Notes))
		}
		return nil
	},
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Change the status of an application",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		status := models.ApplicationStatus(args[1])
		if !status.Valid() {
			return fmt.Errorf("invalid status %q (valid: %s)", args[1], statusList())
		}

		app, err := findApplication(cmd, args[0])
		if err != nil {
			return err
		}

		app.Status = status
		app.UpdatedAt = nowISO()
		if err := application.Store.UpdateApplication(cmd.Context(), *app); err != nil {
			return fmt.Errorf("update application: %w", err)
		}

		loc := application.Locale(cmd.Context())
		cmd.Printf("✓ %s at %s → %s\n", app.JobTitle, app.Company, i18n.StatusLabel(loc, status))
		return nil
	},
}

var updateApplicationCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an application",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("application id required")
		}
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		app, err := findApplication(cmd, args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("title") {
			app.JobTitle, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("company") {
			app.Company, _ = cmd.Flags().GetString("company")
		}
		if cmd.Flags().Changed("date") {
			app.ApplicationDate, _ = cmd.Flags().GetString("date")
		}
		if cmd.Flags().Changed("notes") {
			app.Notes, _ = cmd.Flags().GetString("notes")
		}
		if cmd.Flags().Changed("tags") {
			tags, _ := cmd.Flags().GetString("tags")
			app.Tags = splitTags(tags)
		}
		app.UpdatedAt = nowISO()

		if err := application.Store.UpdateApplication(cmd.Context(), *app); err != nil {
			return fmt.Errorf("update application: %w", err)
		}
		cmd.Printf("✓ Application updated: %s\n", app.ID)
		return nil
	},
}

var removeApplicationCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an application",
	Long:  "Delete an application. Tasks linked to it are kept and keep their reference.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		if err := application.Store.DeleteApplication(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete application: %w", err)
		}
		cmd.Printf("✓ Application removed: %s\n", args[0])
		return nil
	},
}

// findApplication resolves an id to a record via a full scan.
func findApplication(cmd *cobra.Command, id string) (*models.Application, error) {
	application, err := fromContext(cmd)
	if err != nil {
		return nil, err
	}
	apps, err := application.Store.ListApplications(cmd.Context())
	if err != nil {
		if errors.Is(err, database.ErrNotInitialized) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch applications: %w", err)
	}
	for _, app := range apps {
		if app.ID == id {
			return &app, nil
		}
	}
	return nil, fmt.Errorf("no application with id %q", id)
}

func statusList() string {
	parts := make([]string, len(models.Statuses))
	for i, s := range models.Statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// splitTags turns a comma-separated flag into a trimmed tag list,
// suppressing duplicates. The store itself accepts tags as-is.
func splitTags(raw string) []string {
	tags := []string{}
	seen := map[string]bool{}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func init() {
	rootCmd.AddCommand(applicationCmd)
	applicationCmd.AddCommand(addApplicationCmd)
	applicationCmd.AddCommand(listApplicationsCmd)
	applicationCmd.AddCommand(showApplicationCmd)
	applicationCmd.AddCommand(setStatusCmd)
	applicationCmd.AddCommand(updateApplicationCmd)
	applicationCmd.AddCommand(removeApplicationCmd)

	addApplicationCmd.Flags().String("title", "", "Job title")
	addApplicationCmd.Flags().String("company", "", "Company name")
	addApplicationCmd.Flags().String("status", string(models.StatusToApply), "Application status")
	addApplicationCmd.Flags().String("date", "", "Application date (YYYY-MM-DD, default today)")
	addApplicationCmd.Flags().String("notes", "", "Free-form notes")
	addApplicationCmd.Flags().String("tags", "", "Comma-separated tags")

	listApplicationsCmd.Flags().String("status", "", "Only show applications with this status")

	updateApplicationCmd.Flags().String("title", "", "Job title")
	updateApplicationCmd.Flags().String("company", "", "Company name")
	updateApplicationCmd.Flags().String("date", "", "Application date (YYYY-MM-DD)")
	updateApplicationCmd.Flags().String("notes", "", "Free-form notes")
	updateApplicationCmd.Flags().String("tags", "", "Comma-separated tags")
}
