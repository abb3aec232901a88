package service

import (
	"context"

	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/store"
)

// CustomerService exposes the customer directory.
type CustomerService struct {
	store store.Store
}

func NewCustomerService(st store.Store) *CustomerService {
	return &CustomerService{store: st}
}

// List returns the current customers snapshot.
func (s *CustomerService) List(ctx context.Context) []model.Customer {
	return s.store.LoadCustomers(ctx)
}
