// Package backup encodes the three live collections into a workbook and
// decodes an uploaded workbook back into rows for reconciliation.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/restore"
)

const (
	sheetJobs      = "Jobs"
	sheetCustomers = "Customers"
	sheetUsers     = "Users"
)

var jobHeaders = []string{
	"id", "customerName", "customerContact", "customerEmail", "description",
	"type", "priority", "assignedTo", "price", "currentStage",
	"createdAt", "updatedAt", "completedAt", "history",
}

var customerHeaders = []string{"id", "name", "phone", "email", "lastVisit", "totalVisits"}

var userHeaders = []string{"id", "username", "passwordHash", "name", "role", "isActive"}

// Filename returns the export name for the given day, e.g.
// PrintFlow_DB_2026-09-01.xlsx.
func Filename(now time.Time) string {
	return fmt.Sprintf("PrintFlow_DB_%s.xlsx", now.Format("2006-01-02"))
}

// Encode writes the three collections into a workbook. Job histories are
// serialized to JSON in their column so they survive the flat format.
func Encode(jobs []model.Job, customers []model.Customer, users []model.User) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetJobs); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetCustomers); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetUsers); err != nil {
		return nil, err
	}

	if err := writeRow(f, sheetJobs, 1, toCells(jobHeaders)); err != nil {
		return nil, err
	}
	for i, job := range jobs {
		history, err := json.Marshal(job.History)
		if err != nil {
			return nil, fmt.Errorf("marshal history for job %s: %w", job.ID, err)
		}
		cells := []any{
			job.ID, job.CustomerName, job.CustomerContact, job.CustomerEmail,
			job.Description, string(job.Type), string(job.Priority), job.AssignedTo,
			strconv.FormatInt(job.Price, 10), string(job.CurrentStage),
			strconv.FormatInt(job.CreatedAt, 10), strconv.FormatInt(job.UpdatedAt, 10),
			formatOptional(job.CompletedAt), string(history),
		}
		if err := writeRow(f, sheetJobs, i+2, cells); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, sheetCustomers, 1, toCells(customerHeaders)); err != nil {
		return nil, err
	}
	for i, c := range customers {
		cells := []any{
			c.ID, c.Name, c.Phone, c.Email,
			strconv.FormatInt(c.LastVisit, 10), strconv.Itoa(c.TotalVisits),
		}
		if err := writeRow(f, sheetCustomers, i+2, cells); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, sheetUsers, 1, toCells(userHeaders)); err != nil {
		return nil, err
	}
	for i, u := range users {
		cells := []any{
			u.ID, u.Username, u.PasswordHash, u.Name, string(u.Role),
			strconv.FormatBool(u.IsActive),
		}
		if err := writeRow(f, sheetUsers, i+2, cells); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Decode reads an uploaded workbook into per-table rows keyed by header.
// A missing sheet yields a nil row slice; malformed workbook bytes are the
// only error here, cell-level problems belong to the reconciler.
func Decode(r io.Reader) (jobRows, customerRows, userRows []restore.Row, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", restore.ErrParse, err)
	}
	defer f.Close()

	if jobRows, err = sheetRows(f, sheetJobs); err != nil {
		return nil, nil, nil, err
	}
	if customerRows, err = sheetRows(f, sheetCustomers); err != nil {
		return nil, nil, nil, err
	}
	if userRows, err = sheetRows(f, sheetUsers); err != nil {
		return nil, nil, nil, err
	}
	return jobRows, customerRows, userRows, nil
}

func sheetRows(f *excelize.File, sheet string) ([]restore.Row, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil
	}
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", restore.ErrParse, sheet, err)
	}
	if len(raw) < 2 {
		return nil, nil
	}

	headers := raw[0]
	rows := make([]restore.Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(restore.Row, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = cells[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toCells(headers []string) []any {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func formatOptional(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
