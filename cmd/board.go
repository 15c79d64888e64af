package cmd

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/jobtrackr/jobtrackr/pkg/models"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show applications grouped by status",
	Long:  "Render all applications as a Kanban-style board, one column per status",
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
		if len(apps) == 0 {
			cmd.Println(i18n.T(loc).NoApplications)
			return nil
		}

		groups := map[models.ApplicationStatus][]models.Application{}
		for _, app := range apps {
			groups[app.Status] = append(groups[app.Status], app)
		}

		cmd.Println(titleStyle.Render("Application Board"))

		columns := make([]string, 0, len(models.Statuses))
		for _, status := range models.Statuses {
			cards := groups[status]
			sort.Slice(cards, func(i, j int) bool {
				return cards[i].ApplicationDate > cards[j].ApplicationDate
			})

			header := fmt.Sprintf("%s (%d)", i18n.StatusLabel(loc, status), len(cards))
			body := labelStyle.Render(header)
			for _, card := range cards {
				body += fmt.Sprintf("\n%s\n%s", card.JobTitle, valueStyle.Render(card.Company))
			}
			columns = append(columns, columnStyle.Render(body))
		}

		cmd.Println(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
