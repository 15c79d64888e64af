package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/jobtrackr/jobtrackr/internal/stats"
	"github.com/jobtrackr/jobtrackr/pkg/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View application statistics",
	Long:  "Display totals, response rates, status distribution, and the monthly application trend",
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

		summary := stats.Compute(apps, time.Now())

		cmd.Println(titleStyle.Render("Application Statistics"))

		cmd.Printf("\n%s\n", labelStyle.Render("Overview"))
		cmd.Printf("  Total applications: %d\n", summary.Total)
		cmd.Printf("  Sent: %d\n", summary.Sent)
		if summary.Sent > 0 {
			cmd.Printf("  Response rate: %d%%\n", summary.ResponseRate)
		}
		if summary.AvgResponseDays > 0 {
			cmd.Printf("  Average time to response: %d days\n", summary.AvgResponseDays)
		}

		cmd.Printf("\n%s\n", labelStyle.Render("Status Breakdown"))
		for _, status := range models.Statuses {
			count := summary.StatusCounts[status]
			if count == 0 {
				continue
			}
			percentage := float64(count) / float64(summary.Total) * 100
			cmd.Printf("  %s: %d (%.1f%%)\n", i18n.StatusLabel(loc, status), count, percentage)
		}

		if len(summary.MonthlyTrend) > 0 {
			cmd.Printf("\n%s\n", labelStyle.Render("Applications per Month"))
			for _, month := range summary.MonthlyTrend {
				cmd.Printf("  %s %s %d\n", month.Month, strings.Repeat("█", month.Count), month.Count)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
