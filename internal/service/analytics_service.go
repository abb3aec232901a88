package service

import (
	"context"
	"time"

	"github.com/printflow/api/internal/analytics"
	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/store"
)

// DailyCashWindowDays is how many recent date buckets the dashboard shows.
const DailyCashWindowDays = 14

// AnalyticsService computes dashboard metrics from the jobs snapshot.
// Read-only: it never writes anything back.
type AnalyticsService struct {
	store store.Store
}

func NewAnalyticsService(st store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// Dashboard assembles every metric behind the dashboard page.
func (s *AnalyticsService) Dashboard(ctx context.Context) *model.DashboardResponse {
	jobs := s.store.LoadJobs(ctx)
	now := time.Now()

	return &model.DashboardResponse{
		StageTat:       analytics.StageTat(jobs),
		DailyCash:      analytics.DailyCash(jobs, DailyCashWindowDays),
		Revenue:        analytics.Revenue(jobs),
		CompletedToday: analytics.CompletedToday(jobs, now),
		Workload:       analytics.Workload(jobs),
		TotalJobs:      len(jobs),
	}
}
