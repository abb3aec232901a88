// Package workflow mutates job collections: creation, stage advancement and
// deletion. All functions operate on a snapshot and return a new slice; the
// caller owns persistence.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/stage"
)

var (
	// ErrJobNotFound is returned when the referenced id is absent.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobCompleted is returned when advancing a job already at the
	// terminal stage. The collection is left untouched.
	ErrJobCompleted = errors.New("job already completed")
)

// NewJob builds a job at the Counter stage with its history seeded.
func NewJob(req *model.CreateJobRequest, now time.Time) model.Job {
	ts := now.UnixMilli()
	assignedTo := req.AssignedTo
	if assignedTo == "" {
		assignedTo = "Unassigned"
	}
	return model.Job{
		ID:              fmt.Sprintf("JOB-%s", uuid.New().String()[:8]),
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		CustomerEmail:   req.CustomerEmail,
		Description:     req.Description,
		Type:            req.Type,
		Priority:        req.Priority,
		AssignedTo:      assignedTo,
		Price:           req.Price,
		CurrentStage:    model.StageCounter,
		CreatedAt:       ts,
		UpdatedAt:       ts,
		History:         []model.HistoryEntry{{Stage: model.StageCounter, Timestamp: ts}},
	}
}

// Advance moves the identified job to its next stage, appending one history
// entry. The input slice is not modified; existing history entries are
// shared, never rewritten.
func Advance(jobs []model.Job, jobID string, now time.Time) ([]model.Job, error) {
	idx := -1
	for i := range jobs {
		if jobs[i].ID == jobID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrJobNotFound
	}

	job := jobs[idx]
	next, ok := stage.Next(job.CurrentStage, job.Type)
	if !ok {
		return nil, ErrJobCompleted
	}

	ts := now.UnixMilli()
	history := make([]model.HistoryEntry, 0, len(job.History)+1)
	history = append(history, job.History...)
	history = append(history, model.HistoryEntry{Stage: next, Timestamp: ts})

	job.CurrentStage = next
	job.History = history
	job.UpdatedAt = ts
	if next == model.StageCompleted {
		job.CompletedAt = ts
	}

	out := make([]model.Job, len(jobs))
	copy(out, jobs)
	out[idx] = job
	return out, nil
}

// Remove hard-deletes the identified job. Removing an absent id is a no-op.
func Remove(jobs []model.Job, jobID string) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != jobID {
			out = append(out, j)
		}
	}
	return out
}
