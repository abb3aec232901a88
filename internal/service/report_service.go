package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/printflow/api/internal/analytics"
	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/store"
)

// TaskTypeReport is the asynq task type for shop report generation
const TaskTypeReport = "report:generate"

// Fallback texts shown instead of a generated report. The report endpoint
// never surfaces AI failures as errors.
const (
	FallbackMissingConfig = "AI Configuration Missing. Please set up the API Key in your environment to use this feature."
	FallbackUnavailable   = "Unable to generate AI report at this time. Please try again later."
)

// ErrReportNotFound is returned when the report id is unknown or expired.
var ErrReportNotFound = errors.New("report not found")

const reportTTL = 24 * time.Hour

// ReportJobPayload is the context captured at request time and handed to
// the worker.
type ReportJobPayload struct {
	ActiveJobs     []model.ReportJobSummary `json:"activeJobs"`
	CompletedToday int                      `json:"completedToday"`
}

// ReportService queues AI shop reports and tracks their status in redis.
// Generation is fire-and-forget: nothing else in the system waits on it.
type ReportService struct {
	store       store.Store
	redis       *redis.Client
	asynqClient *asynq.Client
}

func NewReportService(st store.Store, redisClient *redis.Client, asynqClient *asynq.Client) *ReportService {
	return &ReportService{
		store:       st,
		redis:       redisClient,
		asynqClient: asynqClient,
	}
}

// Request snapshots the shop floor context and enqueues report generation.
func (s *ReportService) Request(ctx context.Context) (*model.ReportRequestResponse, error) {
	jobs := s.store.LoadJobs(ctx)

	payload := &ReportJobPayload{
		ActiveJobs:     make([]model.ReportJobSummary, 0),
		CompletedToday: analytics.CompletedToday(jobs, time.Now()),
	}
	for _, j := range jobs {
		if j.CurrentStage == model.StageCompleted {
			continue
		}
		payload.ActiveJobs = append(payload.ActiveJobs, model.ReportJobSummary{
			ID:       j.ID,
			Stage:    j.CurrentStage,
			Assignee: j.AssignedTo,
			Priority: j.Priority,
		})
	}

	report := &model.Report{
		ID:        uuid.New().String(),
		Status:    model.ReportStatusQueued,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.saveReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	task, err := newReportTask(report.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	_, err = s.asynqClient.Enqueue(task,
		asynq.Queue("reports"),
		asynq.MaxRetry(2),
		asynq.Retention(reportTTL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	return &model.ReportRequestResponse{ReportID: report.ID, Status: report.Status}, nil
}

// Get returns the report's current status and content.
func (s *ReportService) Get(ctx context.Context, reportID string) (*model.Report, error) {
	data, err := s.redis.Get(ctx, reportKey(reportID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// MarkRunning is called by the worker when generation starts.
func (s *ReportService) MarkRunning(ctx context.Context, reportID string) error {
	report, err := s.Get(ctx, reportID)
	if err != nil {
		return err
	}
	report.Status = model.ReportStatusRunning
	return s.saveReport(ctx, report)
}

// Complete stores the final report text.
func (s *ReportService) Complete(ctx context.Context, reportID, content string) error {
	report, err := s.Get(ctx, reportID)
	if err != nil {
		return err
	}
	report.Status = model.ReportStatusSucceeded
	report.Content = content
	return s.saveReport(ctx, report)
}

// BuildPrompt renders the shop floor context into the report prompt.
func BuildPrompt(payload *ReportJobPayload) (system, user string, err error) {
	activeJSON, err := json.Marshal(payload.ActiveJobs)
	if err != nil {
		return "", "", err
	}

	system = "You are a clever shop manager assistant for a printing shop in India. " +
		"Analyze the job data you are given and provide a concise status report. " +
		"Currency is in Indian Rupees."

	user = fmt.Sprintf(`Data Summary:
- Active Jobs: %s
- Completed Today Count: %d

Please provide:
1. A quick summary of the shop floor status (who is overloaded?).
2. Identify any bottlenecks (e.g., too many jobs in Design or Finishing).
3. Suggest which 2 jobs should be prioritized immediately.
4. A motivational quote for the team.

Keep the tone professional but encouraging. Limit to 200 words.`,
		activeJSON, payload.CompletedToday)

	return system, user, nil
}

func (s *ReportService) saveReport(ctx context.Context, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, reportKey(report.ID), data, reportTTL).Err()
}

func reportKey(reportID string) string {
	return fmt.Sprintf("printflow:report:%s", reportID)
}

func newReportTask(reportID string, payload *ReportJobPayload) (*asynq.Task, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	taskPayload := map[string]interface{}{
		"reportId": reportID,
		"payload":  json.RawMessage(payloadBytes),
	}
	data, err := json.Marshal(taskPayload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeReport, data), nil
}
