package model

// ReportStatus tracks the lifecycle of a background shop report
type ReportStatus string

const (
	ReportStatusQueued    ReportStatus = "queued"
	ReportStatusRunning   ReportStatus = "running"
	ReportStatusSucceeded ReportStatus = "succeeded"
)

// Report is an AI-generated shop floor summary. Content always holds
// readable text: generation failures produce a fixed fallback message, not
// an error state.
type Report struct {
	ID        string       `json:"id"`
	Status    ReportStatus `json:"status"`
	Content   string       `json:"content,omitempty"`
	CreatedAt int64        `json:"createdAt"`
}

// ReportJobSummary is the per-job context sent to the report model
type ReportJobSummary struct {
	ID       string   `json:"id"`
	Stage    JobStage `json:"stage"`
	Assignee string   `json:"assignee"`
	Priority Priority `json:"priority"`
}

// ReportRequestResponse acknowledges a queued report
type ReportRequestResponse struct {
	ReportID string       `json:"reportId"`
	Status   ReportStatus `json:"status"`
}
