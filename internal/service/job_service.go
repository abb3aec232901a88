package service

import (
	"context"
	"sync"
	"time"

	"github.com/printflow/api/internal/directory"
	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/store"
	"github.com/printflow/api/internal/workflow"
)

// JobService orchestrates job reads and writes. Every mutation is a full
// read-modify-write of the jobs collection; the shared mutex serializes
// writers so two requests cannot silently drop each other's changes.
type JobService struct {
	store store.Store
	mu    *sync.Mutex
}

func NewJobService(st store.Store, mu *sync.Mutex) *JobService {
	return &JobService{store: st, mu: mu}
}

// List returns the current jobs snapshot.
func (s *JobService) List(ctx context.Context) []model.Job {
	return s.store.LoadJobs(ctx)
}

// Create registers a new job at the Counter stage and records the customer
// visit in the directory.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	job := workflow.NewJob(req, now)

	jobs := append(s.store.LoadJobs(ctx), job)
	if err := s.store.SaveJobs(ctx, jobs); err != nil {
		return nil, err
	}

	customers := directory.Upsert(s.store.LoadCustomers(ctx),
		req.CustomerName, req.CustomerContact, req.CustomerEmail, now)
	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return nil, err
	}

	return &job, nil
}

// Advance moves a job to its next stage.
func (s *JobService) Advance(ctx context.Context, jobID string) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := workflow.Advance(s.store.LoadJobs(ctx), jobID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveJobs(ctx, jobs); err != nil {
		return nil, err
	}

	for i := range jobs {
		if jobs[i].ID == jobID {
			return &jobs[i], nil
		}
	}
	return nil, workflow.ErrJobNotFound
}

// Delete removes a job permanently.
func (s *JobService) Delete(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := workflow.Remove(s.store.LoadJobs(ctx), jobID)
	return s.store.SaveJobs(ctx, jobs)
}
