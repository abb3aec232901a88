package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/printflow/api/internal/model"
)

const (
	keyJobs      = "printflow:jobs"
	keyCustomers = "printflow:customers"
	keyUsers     = "printflow:users"
)

// RedisStore persists each collection as one JSON blob under a fixed key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) LoadJobs(ctx context.Context) []model.Job {
	var jobs []model.Job
	s.load(ctx, keyJobs, &jobs)
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs
}

func (s *RedisStore) SaveJobs(ctx context.Context, jobs []model.Job) error {
	return s.save(ctx, keyJobs, jobs)
}

func (s *RedisStore) LoadCustomers(ctx context.Context) []model.Customer {
	var customers []model.Customer
	s.load(ctx, keyCustomers, &customers)
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers
}

func (s *RedisStore) SaveCustomers(ctx context.Context, customers []model.Customer) error {
	return s.save(ctx, keyCustomers, customers)
}

func (s *RedisStore) LoadUsers(ctx context.Context) []model.User {
	var users []model.User
	s.load(ctx, keyUsers, &users)
	if users == nil {
		users = []model.User{}
	}
	return users
}

func (s *RedisStore) SaveUsers(ctx context.Context, users []model.User) error {
	return s.save(ctx, keyUsers, users)
}

func (s *RedisStore) load(ctx context.Context, key string, dst any) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to load %s: %v", key, err)
		}
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("Corrupt data in %s, treating as empty: %v", key, err)
	}
}

func (s *RedisStore) save(ctx context.Context, key string, items any) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}
