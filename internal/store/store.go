// Package store is the persistence port: whole collections loaded and saved
// as single values against a durable key-value store.
package store

import (
	"context"

	"github.com/printflow/api/internal/model"
)

// Store reads and writes whole-collection snapshots. Loads never fail:
// missing or corrupt data comes back as an empty collection and the failure
// is logged, so a bad blob cannot take the shop offline.
type Store interface {
	LoadJobs(ctx context.Context) []model.Job
	SaveJobs(ctx context.Context, jobs []model.Job) error

	LoadCustomers(ctx context.Context) []model.Customer
	SaveCustomers(ctx context.Context, customers []model.Customer) error

	LoadUsers(ctx context.Context) []model.User
	SaveUsers(ctx context.Context, users []model.User) error
}
