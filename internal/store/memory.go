package store

import (
	"context"
	"sync"

	"github.com/printflow/api/internal/model"
)

// Memory is an in-process Store used by tests.
type Memory struct {
	mu        sync.RWMutex
	jobs      []model.Job
	customers []model.Customer
	users     []model.User
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadJobs(_ context.Context) []model.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Job, len(m.jobs))
	copy(out, m.jobs)
	return out
}

func (m *Memory) SaveJobs(_ context.Context, jobs []model.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append([]model.Job(nil), jobs...)
	return nil
}

func (m *Memory) LoadCustomers(_ context.Context) []model.Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Customer, len(m.customers))
	copy(out, m.customers)
	return out
}

func (m *Memory) SaveCustomers(_ context.Context, customers []model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = append([]model.Customer(nil), customers...)
	return nil
}

func (m *Memory) LoadUsers(_ context.Context) []model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.User, len(m.users))
	copy(out, m.users)
	return out
}

func (m *Memory) SaveUsers(_ context.Context, users []model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append([]model.User(nil), users...)
	return nil
}
