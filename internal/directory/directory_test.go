package directory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printflow/api/internal/directory"
)

func TestUpsertCreatesThenMerges(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Hour)

	customers := directory.Upsert(nil, "Acme", "111", "a@x.com", t1)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme", customers[0].Name)
	assert.Equal(t, 1, customers[0].TotalVisits)
	assert.NotEmpty(t, customers[0].ID)

	// Different casing, empty phone: matches the same record, keeps the
	// stored phone, overwrites email.
	customers = directory.Upsert(customers, "acme", "", "b@x.com", t2)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme", customers[0].Name)
	assert.Equal(t, "111", customers[0].Phone)
	assert.Equal(t, "b@x.com", customers[0].Email)
	assert.Equal(t, 2, customers[0].TotalVisits)
	assert.Equal(t, t2.UnixMilli(), customers[0].LastVisit)
}

func TestUpsertDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	original := directory.Upsert(nil, "Acme", "111", "a@x.com", now)

	_ = directory.Upsert(original, "Acme", "222", "", now.Add(time.Hour))
	assert.Equal(t, "111", original[0].Phone)
	assert.Equal(t, 1, original[0].TotalVisits)
}

func TestUpsertDistinctNames(t *testing.T) {
	now := time.Now()
	customers := directory.Upsert(nil, "Acme", "111", "", now)
	customers = directory.Upsert(customers, "Amit Sharma", "222", "", now)
	assert.Len(t, customers, 2)
}
