package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printflow/api/internal/analytics"
	"github.com/printflow/api/internal/model"
)

const minute = int64(60000)

func completedJob(id string, price int64, completedAt time.Time) model.Job {
	ts := completedAt.UnixMilli()
	return model.Job{
		ID:           id,
		Price:        price,
		CurrentStage: model.StageCompleted,
		CompletedAt:  ts,
		History: []model.HistoryEntry{
			{Stage: model.StageCounter, Timestamp: ts - 60*minute},
			{Stage: model.StageCompleted, Timestamp: ts},
		},
	}
}

func TestStageTatEmptyCollection(t *testing.T) {
	stats := analytics.StageTat(nil)
	require.Len(t, stats, 3)
	for _, s := range stats {
		assert.Zero(t, s.AvgTimeMinutes, "stage %s", s.Stage)
		assert.Zero(t, s.AvgTimeDays, "stage %s", s.Stage)
	}
}

func TestStageTatAttributesToStageBeingLeft(t *testing.T) {
	jobs := []model.Job{
		{
			ID: "JOB-1",
			History: []model.HistoryEntry{
				{Stage: model.StageCounter, Timestamp: 0},
				{Stage: model.StageDesign, Timestamp: 10 * minute},
				{Stage: model.StageProduction, Timestamp: 30 * minute},
			},
		},
		{
			ID: "JOB-2",
			History: []model.HistoryEntry{
				{Stage: model.StageDesign, Timestamp: 0},
				{Stage: model.StageProduction, Timestamp: 10 * minute},
				{Stage: model.StageCashier, Timestamp: 20 * minute},
			},
		},
	}

	stats := analytics.StageTat(jobs)
	byStage := make(map[model.JobStage]model.StageTatStats)
	for _, s := range stats {
		byStage[s.Stage] = s
	}

	// Design: 20 min (JOB-1) and 10 min (JOB-2) -> avg 15.
	assert.Equal(t, int64(15), byStage[model.StageDesign].AvgTimeMinutes)
	assert.Equal(t, 0.01, byStage[model.StageDesign].AvgTimeDays)
	// Production: only JOB-2 left it, after 10 min.
	assert.Equal(t, int64(10), byStage[model.StageProduction].AvgTimeMinutes)
	// Finishing: no samples.
	assert.Zero(t, byStage[model.StageFinishing].AvgTimeMinutes)
}

func TestStageTatResortsHistory(t *testing.T) {
	// Imported data may arrive out of order; the computation must not
	// trust it.
	jobs := []model.Job{{
		ID: "JOB-1",
		History: []model.HistoryEntry{
			{Stage: model.StageProduction, Timestamp: 40 * minute},
			{Stage: model.StageDesign, Timestamp: 10 * minute},
			{Stage: model.StageCounter, Timestamp: 0},
		},
	}}

	stats := analytics.StageTat(jobs)
	for _, s := range stats {
		if s.Stage == model.StageDesign {
			assert.Equal(t, int64(30), s.AvgTimeMinutes)
		}
	}
	// Input order untouched.
	assert.Equal(t, model.StageProduction, jobs[0].History[0].Stage)
}

func TestDailyCashGroupsByDate(t *testing.T) {
	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	jobs := []model.Job{
		completedJob("JOB-1", 500, day),
		completedJob("JOB-2", 700, day.Add(3*time.Hour)),
		{ID: "JOB-3", Price: 9999, CurrentStage: model.StageDesign}, // not completed
	}

	summaries := analytics.DailyCash(jobs, 14)
	require.Len(t, summaries, 1)
	assert.Equal(t, "2026-03-01", summaries[0].Date)
	assert.Equal(t, int64(1200), summaries[0].Amount)
	assert.Equal(t, 2, summaries[0].Count)
}

func TestDailyCashSortsChronologically(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	// Deliberately out of order: the later date is seen first.
	jobs := []model.Job{
		completedJob("JOB-1", 100, base),
		completedJob("JOB-2", 200, base.AddDate(0, 0, -5)),
		completedJob("JOB-3", 300, base.AddDate(0, 0, -2)),
	}

	summaries := analytics.DailyCash(jobs, 14)
	require.Len(t, summaries, 3)
	assert.Equal(t, "2026-03-05", summaries[0].Date)
	assert.Equal(t, "2026-03-08", summaries[1].Date)
	assert.Equal(t, "2026-03-10", summaries[2].Date)
}

func TestDailyCashWindowKeepsMostRecent(t *testing.T) {
	base := time.Date(2026, 3, 20, 12, 0, 0, 0, time.Local)
	var jobs []model.Job
	for i := 0; i < 20; i++ {
		jobs = append(jobs, completedJob(fmt.Sprintf("JOB-%d", i), 100, base.AddDate(0, 0, -i)))
	}

	summaries := analytics.DailyCash(jobs, 14)
	require.Len(t, summaries, 14)
	assert.Equal(t, "2026-03-07", summaries[0].Date)
	assert.Equal(t, "2026-03-20", summaries[13].Date)
}

func TestRevenueSplit(t *testing.T) {
	jobs := []model.Job{
		{ID: "JOB-1", Price: 1500, CurrentStage: model.StageDesign},
		{ID: "JOB-2", Price: 300, CurrentStage: model.StageCompleted},
	}

	split := analytics.Revenue(jobs)
	assert.Equal(t, int64(300), split.Realized)
	assert.Equal(t, int64(1500), split.Pending)
}

func TestCompletedToday(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.Local)
	jobs := []model.Job{
		completedJob("JOB-1", 100, now.Add(-2*time.Hour)),            // today
		completedJob("JOB-2", 100, now.AddDate(0, 0, -1)),            // yesterday
		{ID: "JOB-3", CurrentStage: model.StageCashier},              // not completed
		completedJob("JOB-4", 100, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)), // midnight boundary
	}

	assert.Equal(t, 2, analytics.CompletedToday(jobs, now))
}

func TestWorkloadStripsRoleAnnotation(t *testing.T) {
	jobs := []model.Job{
		{ID: "JOB-1", AssignedTo: "Bob (Designer)", CurrentStage: model.StageDesign},
		{ID: "JOB-2", AssignedTo: "Bob (Production)", CurrentStage: model.StageCompleted},
		{ID: "JOB-3", AssignedTo: "Eva (Cashier)", CurrentStage: model.StageCashier},
	}

	loads := analytics.Workload(jobs)
	require.Len(t, loads, 2)

	assert.Equal(t, "Bob", loads[0].Name)
	assert.Equal(t, 1, loads[0].Active)
	assert.Equal(t, 1, loads[0].Completed)
	assert.Equal(t, 2, loads[0].Total)

	assert.Equal(t, "Eva", loads[1].Name)
	assert.Equal(t, 1, loads[1].Total)
}

func TestWorkloadTiesKeepEncounterOrder(t *testing.T) {
	jobs := []model.Job{
		{ID: "JOB-1", AssignedTo: "Eva (Cashier)", CurrentStage: model.StageCashier},
		{ID: "JOB-2", AssignedTo: "Bob (Designer)", CurrentStage: model.StageDesign},
	}

	loads := analytics.Workload(jobs)
	require.Len(t, loads, 2)
	assert.Equal(t, "Eva", loads[0].Name)
	assert.Equal(t, "Bob", loads[1].Name)
}
