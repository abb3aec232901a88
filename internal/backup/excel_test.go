package backup_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/printflow/api/internal/backup"
	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/restore"
)

func sampleData() ([]model.Job, []model.Customer, []model.User) {
	jobs := []model.Job{
		{
			ID:              "JOB-1001",
			CustomerName:    "Acme Corp",
			CustomerContact: "9876543210",
			CustomerEmail:   "contact@acme.com",
			Description:     "500 Business Cards",
			Type:            model.JobTypePrint,
			Priority:        model.PriorityUrgent,
			AssignedTo:      "Bob (Designer)",
			Price:           1500,
			CurrentStage:    model.StageDesign,
			CreatedAt:       1_700_000_000_000,
			UpdatedAt:       1_700_000_600_000,
			History: []model.HistoryEntry{
				{Stage: model.StageCounter, Timestamp: 1_700_000_000_000},
				{Stage: model.StageDesign, Timestamp: 1_700_000_600_000},
			},
		},
		{
			ID:           "JOB-900",
			CustomerName: "Local Gym",
			Description:  "Flyers",
			Type:         model.JobTypeXerox,
			Priority:     model.PriorityNormal,
			AssignedTo:   "Eva (Cashier)",
			Price:        5000,
			CurrentStage: model.StageCompleted,
			CreatedAt:    1_699_000_000_000,
			UpdatedAt:    1_699_100_000_000,
			CompletedAt:  1_699_100_000_000,
			History: []model.HistoryEntry{
				{Stage: model.StageCounter, Timestamp: 1_699_000_000_000},
				{Stage: model.StageProduction, Timestamp: 1_699_050_000_000},
				{Stage: model.StageCashier, Timestamp: 1_699_090_000_000},
				{Stage: model.StageCompleted, Timestamp: 1_699_100_000_000},
			},
		},
	}
	customers := []model.Customer{
		{ID: "CUST-1", Name: "Acme Corp", Phone: "9876543210", Email: "contact@acme.com", LastVisit: 1_700_000_000_000, TotalVisits: 4},
	}
	users := []model.User{
		{ID: "USER-1", Username: "admin", PasswordHash: "$2a$10$somehash", Name: "System Admin", Role: model.RoleAdmin, IsActive: true},
		{ID: "USER-2", Username: "bob", PasswordHash: "$2a$10$otherhash", Name: "Bob (Designer)", Role: model.RoleDesigner, IsActive: false},
	}
	return jobs, customers, users
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "PrintFlow_DB_2026-09-01.xlsx", backup.Filename(now))
}

func TestEncodeProducesThreeSheets(t *testing.T) {
	jobs, customers, users := sampleData()

	f, err := backup.Encode(jobs, customers, users)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Jobs", "Customers", "Users"}, f.GetSheetList())

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 jobs
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "JOB-1001", rows[1][0])
}

func TestRoundTrip(t *testing.T) {
	jobs, customers, users := sampleData()

	f, err := backup.Encode(jobs, customers, users)
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	jobRows, customerRows, userRows, err := backup.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	snap, err := restore.Reconcile(jobRows, customerRows, userRows, model.JobDefaults())
	require.NoError(t, err)

	assert.Equal(t, jobs, snap.Jobs)
	assert.Equal(t, customers, snap.Customers)
	assert.Equal(t, users, snap.Users)
}

func TestDecodeMissingSheetsYieldNoRows(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Jobs"))
	require.NoError(t, f.SetCellValue("Jobs", "A1", "id"))
	require.NoError(t, f.SetCellValue("Jobs", "A2", "JOB-1"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	jobRows, customerRows, userRows, err := backup.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, jobRows, 1)
	assert.Nil(t, customerRows)
	assert.Nil(t, userRows)
}

func TestDecodeGarbageFails(t *testing.T) {
	_, _, _, err := backup.Decode(bytes.NewReader([]byte("not a workbook")))
	require.ErrorIs(t, err, restore.ErrParse)
}
