// Package analytics derives dashboard metrics from a job collection
// snapshot. Every function is pure and leaves its input untouched.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/printflow/api/internal/model"
)

// tatStages are the stages reported on the turnaround chart.
var tatStages = []model.JobStage{
	model.StageDesign, model.StageProduction, model.StageFinishing,
}

const dateLayout = "2006-01-02"

// StageTat averages, per stage, the time jobs spent in that stage before
// moving on. Each history gap is attributed to the stage being left. A
// stage with no samples reports zero.
func StageTat(jobs []model.Job) []model.StageTatStats {
	sums := make(map[model.JobStage]float64)
	counts := make(map[model.JobStage]int)

	for _, job := range jobs {
		history := make([]model.HistoryEntry, len(job.History))
		copy(history, job.History)
		// Histories are written in order, but imported data may not be.
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Timestamp < history[j].Timestamp
		})

		for i := 0; i+1 < len(history); i++ {
			minutes := float64(history[i+1].Timestamp-history[i].Timestamp) / 60000.0
			sums[history[i].Stage] += minutes
			counts[history[i].Stage]++
		}
	}

	stats := make([]model.StageTatStats, 0, len(tatStages))
	for _, s := range tatStages {
		var avgMinutes, avgDays float64
		if counts[s] > 0 {
			avgMinutes = sums[s] / float64(counts[s])
			avgDays = avgMinutes / 1440.0
		}
		stats = append(stats, model.StageTatStats{
			Stage:          s,
			AvgTimeMinutes: int64(math.Round(avgMinutes)),
			AvgTimeDays:    math.Round(avgDays*100) / 100,
		})
	}
	return stats
}

// DailyCash groups completed-job revenue by local calendar date and returns
// the most recent windowDays buckets in ascending date order. Buckets are
// sorted by the underlying date value, not by the order jobs were seen.
func DailyCash(jobs []model.Job, windowDays int) []model.DailyCashSummary {
	byDate := make(map[string]*model.DailyCashSummary)

	for _, job := range jobs {
		if job.CurrentStage != model.StageCompleted || job.CompletedAt == 0 {
			continue
		}
		date := time.UnixMilli(job.CompletedAt).Local().Format(dateLayout)
		bucket, ok := byDate[date]
		if !ok {
			bucket = &model.DailyCashSummary{Date: date}
			byDate[date] = bucket
		}
		bucket.Amount += job.Price
		bucket.Count++
	}

	summaries := make([]model.DailyCashSummary, 0, len(byDate))
	for _, b := range byDate {
		summaries = append(summaries, *b)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})

	if windowDays > 0 && len(summaries) > windowDays {
		summaries = summaries[len(summaries)-windowDays:]
	}
	return summaries
}

// Revenue splits total job value into collected and still-in-pipeline.
func Revenue(jobs []model.Job) model.RevenueSplit {
	var split model.RevenueSplit
	for _, job := range jobs {
		if job.CurrentStage == model.StageCompleted {
			split.Realized += job.Price
		} else {
			split.Pending += job.Price
		}
	}
	return split
}

// CompletedToday counts jobs completed since the start of now's local day.
func CompletedToday(jobs []model.Job, now time.Time) int {
	local := now.Local()
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location()).UnixMilli()

	count := 0
	for _, job := range jobs {
		if job.CurrentStage == model.StageCompleted && job.CompletedAt >= startOfDay {
			count++
		}
	}
	return count
}

// Workload counts active and completed jobs per employee, sorted by total
// descending. Ties keep first-seen order. The assignee display name carries
// a role suffix ("Bob (Designer)") which is stripped before grouping.
func Workload(jobs []model.Job) []model.EmployeeWorkload {
	index := make(map[string]int)
	loads := make([]model.EmployeeWorkload, 0)

	for _, job := range jobs {
		name := employeeName(job.AssignedTo)
		i, ok := index[name]
		if !ok {
			i = len(loads)
			index[name] = i
			loads = append(loads, model.EmployeeWorkload{Name: name})
		}
		if job.CurrentStage == model.StageCompleted {
			loads[i].Completed++
		} else {
			loads[i].Active++
		}
		loads[i].Total++
	}

	sort.SliceStable(loads, func(i, j int) bool {
		return loads[i].Total > loads[j].Total
	})
	return loads
}

func employeeName(assignedTo string) string {
	if i := strings.Index(assignedTo, " ("); i >= 0 {
		return assignedTo[:i]
	}
	return assignedTo
}
