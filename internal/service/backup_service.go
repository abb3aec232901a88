package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/printflow/api/internal/backup"
	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/restore"
	"github.com/printflow/api/internal/store"
)

// BackupService exports the database to a workbook and restores it from an
// uploaded one.
type BackupService struct {
	store store.Store
	mu    *sync.Mutex
}

func NewBackupService(st store.Store, mu *sync.Mutex) *BackupService {
	return &BackupService{store: st, mu: mu}
}

// Export encodes the three collections into a workbook and returns it with
// its dated filename.
func (s *BackupService) Export(ctx context.Context) (*excelize.File, string, error) {
	f, err := backup.Encode(
		s.store.LoadJobs(ctx),
		s.store.LoadCustomers(ctx),
		s.store.LoadUsers(ctx),
	)
	if err != nil {
		return nil, "", err
	}
	return f, backup.Filename(time.Now()), nil
}

// Import replaces all three collections from an uploaded workbook. The
// document is fully decoded and reconciled before the first write, so a
// malformed file leaves the live data untouched.
func (s *BackupService) Import(ctx context.Context, r io.Reader) (*restore.Snapshot, error) {
	jobRows, customerRows, userRows, err := backup.Decode(r)
	if err != nil {
		return nil, err
	}

	snap, err := restore.Reconcile(jobRows, customerRows, userRows, model.JobDefaults())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveJobs(ctx, snap.Jobs); err != nil {
		return nil, err
	}
	if err := s.store.SaveCustomers(ctx, snap.Customers); err != nil {
		return nil, err
	}
	if err := s.store.SaveUsers(ctx, snap.Users); err != nil {
		return nil, err
	}
	return snap, nil
}
