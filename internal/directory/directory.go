// Package directory maintains the customer directory keyed by
// case-insensitive name.
package directory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/printflow/api/internal/model"
)

// Upsert records a visit for the named customer, creating the record on
// first contact. Phone and email overwrite the stored values only when the
// incoming value is non-empty. The input slice is not modified.
func Upsert(customers []model.Customer, name, phone, email string, now time.Time) []model.Customer {
	ts := now.UnixMilli()

	out := make([]model.Customer, len(customers))
	copy(out, customers)

	for i := range out {
		if !strings.EqualFold(out[i].Name, name) {
			continue
		}
		if phone != "" {
			out[i].Phone = phone
		}
		if email != "" {
			out[i].Email = email
		}
		out[i].LastVisit = ts
		out[i].TotalVisits++
		return out
	}

	return append(out, model.Customer{
		ID:          "CUST-" + uuid.New().String()[:8],
		Name:        name,
		Phone:       phone,
		Email:       email,
		LastVisit:   ts,
		TotalVisits: 1,
	})
}
