// Package dashboard aggregates task collections into summary statistics.
package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/aryanch/projtrack/core/risk"
	"github.com/aryanch/projtrack/core/task"
)

const (
	upcomingWindow = 7 * 24 * time.Hour
	upcomingLimit  = 5
)

var nowFunc = time.Now // mockable

// Stats is the dashboard summary over all tasks.
type Stats struct {
	TotalTasks        int         `json:"totalTasks"`
	CompletedTasks    int         `json:"completedTasks"`
	PendingTasks      int         `json:"pendingTasks"`
	OverallProgress   int         `json:"overallProgress"`
	UpcomingDeadlines []task.Task `json:"upcomingDeadlines"`
	RiskScore         int         `json:"riskScore"`
}

// Build computes the dashboard statistics for the given tasks.
func Build(tasks []task.Task) Stats {
	stats := Stats{
		TotalTasks:        len(tasks),
		UpcomingDeadlines: upcomingDeadlines(tasks),
		RiskScore:         risk.Assess(tasks).OverallRisk,
	}

	var progressTotal int
	for _, t := range tasks {
		if t.IsCompleted() {
			stats.CompletedTasks++
		}
		progressTotal += t.Progress
	}
	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks
	if stats.TotalTasks > 0 {
		stats.OverallProgress = int(math.Round(float64(progressTotal) / float64(stats.TotalTasks)))
	}
	return stats
}

// upcomingDeadlines returns at most upcomingLimit non-completed tasks due
// within the next 7 days, earliest first.
func upcomingDeadlines(tasks []task.Task) []task.Task {
	now := nowFunc()
	horizon := now.Add(upcomingWindow)

	upcoming := make([]task.Task, 0, upcomingLimit)
	for _, t := range tasks {
		if t.IsCompleted() {
			continue
		}
		if t.Deadline.Before(now) || t.Deadline.After(horizon) {
			continue
		}
		upcoming = append(upcoming, t)
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Deadline.Before(upcoming[j].Deadline) })

	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	return upcoming
}
