package model

// HistoryEntry records when a job entered a stage.
// Timestamps are milliseconds since epoch.
type HistoryEntry struct {
	Stage     JobStage `json:"stage"`
	Timestamp int64    `json:"timestamp"`
}

// Job is a single print-shop order moving through the pipeline.
// History is append-only: the first entry is always {Counter, createdAt} and
// the last entry's stage equals CurrentStage. CompletedAt is nonzero iff
// CurrentStage is Completed.
type Job struct {
	ID              string         `json:"id"`
	CustomerName    string         `json:"customerName"`
	CustomerContact string         `json:"customerContact"`
	CustomerEmail   string         `json:"customerEmail"`
	Description     string         `json:"description"`
	Type            JobType        `json:"type"`
	Priority        Priority       `json:"priority"`
	AssignedTo      string         `json:"assignedTo"`
	Price           int64          `json:"price"`
	CurrentStage    JobStage       `json:"currentStage"`
	CreatedAt       int64          `json:"createdAt"`
	UpdatedAt       int64          `json:"updatedAt"`
	CompletedAt     int64          `json:"completedAt,omitempty"`
	History         []HistoryEntry `json:"history"`
}

// JobDefaults returns the template applied to imported job rows before the
// row's own fields are overlaid, so rows from older export schemas that lack
// a column still produce a valid job.
func JobDefaults() Job {
	return Job{
		Type:         JobTypePrint,
		Priority:     PriorityNormal,
		AssignedTo:   "Unassigned",
		CurrentStage: StageCounter,
		History:      []HistoryEntry{},
	}
}

// CreateJobRequest represents the job-entry form submission
type CreateJobRequest struct {
	CustomerName    string   `json:"customerName" validate:"required"`
	CustomerContact string   `json:"customerContact"`
	CustomerEmail   string   `json:"customerEmail" validate:"omitempty,email"`
	Description     string   `json:"description"`
	Type            JobType  `json:"type" validate:"required,oneof=Print Xerox Design Binding LargeFormat"`
	Priority        Priority `json:"priority" validate:"required,oneof=Low Normal Urgent"`
	AssignedTo      string   `json:"assignedTo"`
	Price           int64    `json:"price" validate:"min=0"`
}

// AdvanceJobResponse is returned after a job moves to its next stage
type AdvanceJobResponse struct {
	Job       *Job     `json:"job"`
	NextStage JobStage `json:"nextStage"`
}
