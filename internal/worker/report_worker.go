package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/printflow/api/internal/client"
	"github.com/printflow/api/internal/service"
)

// ReportWorker generates AI shop reports in the background. Failures are
// absorbed into fallback text so the requesting user always gets something
// readable.
type ReportWorker struct {
	reportService *service.ReportService
	aiClient      *client.AIClient
}

// NewReportWorker creates a new report worker
func NewReportWorker(reportService *service.ReportService, aiClient *client.AIClient) *ReportWorker {
	return &ReportWorker{
		reportService: reportService,
		aiClient:      aiClient,
	}
}

// ProcessTask handles report task processing
func (w *ReportWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var taskPayload struct {
		ReportID string          `json:"reportId"`
		Payload  json.RawMessage `json:"payload"`
	}

	if err := json.Unmarshal(t.Payload(), &taskPayload); err != nil {
		return fmt.Errorf("failed to unmarshal task payload: %w", err)
	}

	reportID := taskPayload.ReportID
	log.Printf("Starting report job: %s", reportID)

	var payload service.ReportJobPayload
	if err := json.Unmarshal(taskPayload.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal report payload: %w", err)
	}

	if err := w.reportService.MarkRunning(ctx, reportID); err != nil {
		log.Printf("Failed to mark report running: %v", err)
	}

	content := w.generate(ctx, &payload)

	if err := w.reportService.Complete(ctx, reportID, content); err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	log.Printf("Report job %s completed", reportID)
	return nil
}

func (w *ReportWorker) generate(ctx context.Context, payload *service.ReportJobPayload) string {
	if !w.aiClient.IsConfigured() {
		return service.FallbackMissingConfig
	}

	system, user, err := service.BuildPrompt(payload)
	if err != nil {
		log.Printf("Failed to build report prompt: %v", err)
		return service.FallbackUnavailable
	}

	content, err := w.aiClient.ChatCompletion(ctx, system, user)
	if err != nil {
		log.Printf("Chat API error: %v", err)
		return service.FallbackUnavailable
	}
	if content == "" {
		return "No insights generated."
	}
	return content
}
