// Package stats computes application statistics from a full table scan.
package stats

import (
	"sort"
	"time"

	"github.com/jobtrackr/jobtrackr/pkg/models"
)

// MonthCount is one bar of the monthly trend chart.
type MonthCount struct {
	Month string // YYYY-MM
	Count int
}

// Summary aggregates everything the statistics view shows.
type Summary struct {
	Total           int
	Sent            int // sent, followed_up, interview, or offer
	ResponseRate    int // percent of sent applications that got any response
	AvgResponseDays int
	StatusCounts    map[models.ApplicationStatus]int
	MonthlyTrend    []MonthCount // ascending by month, at most 6 entries
}

// statuses counted as "the application left the building"
var sentStatuses = map[models.ApplicationStatus]bool{
	models.StatusSent:       true,
	models.StatusFollowedUp: true,
	models.StatusInterview:  true,
	models.StatusOffer:      true,
}

// statuses counted as a response from the company
var respondedStatuses = map[models.ApplicationStatus]bool{
	models.StatusInterview: true,
	models.StatusOffer:     true,
	models.StatusRejected:  true,
}

// Compute builds a Summary from the applications table. now anchors the
// response-time calculation so results are reproducible in tests.
func Compute(apps []models.Application, now time.Time) Summary {
	summary := Summary{
		Total:        len(apps),
		StatusCounts: map[models.ApplicationStatus]int{},
	}

	responded := 0
	var responseDays []int
	monthly := map[string]int{}

	for _, app := range apps {
		summary.StatusCounts[app.Status]++
		if sentStatuses[app.Status] {
			summary.Sent++
		}
		if respondedStatuses[app.Status] {
			responded++
		}

		date, err := time.Parse("2006-01-02", app.ApplicationDate)
		if err != nil {
			continue
		}
		if app.Status == models.StatusInterview || app.Status == models.StatusOffer {
			days := int(now.Sub(date).Hours() / 24)
			if days >= 0 {
				responseDays = append(responseDays, days)
			}
		}
		monthly[date.Format("2006-01")]++
	}

	if summary.Sent > 0 {
		summary.ResponseRate = int(float64(responded)/float64(summary.Sent)*100 + 0.5)
	}
	if len(responseDays) > 0 {
		total := 0
		for _, d := range responseDays {
			total += d
		}
		summary.AvgResponseDays = (total + len(responseDays)/2) / len(responseDays)
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	if len(months) > 6 {
		months = months[len(months)-6:]
	}
	for _, month := range months {
		summary.MonthlyTrend = append(summary.MonthlyTrend, MonthCount{Month: month, Count: monthly[month]})
	}

	return summary
}
