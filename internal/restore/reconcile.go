// Package restore rebuilds live collections from an imported backup
// document. Reconciliation is all-or-nothing: every row of every table must
// parse before the caller is handed anything to write.
package restore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/printflow/api/internal/model"
)

// ErrParse reports a malformed backup document. No collection may be
// replaced once it is returned.
var ErrParse = errors.New("malformed backup document")

// Row is one spreadsheet row keyed by header name.
type Row map[string]string

// Snapshot holds the three reconciled collections.
type Snapshot struct {
	Jobs      []model.Job
	Customers []model.Customer
	Users     []model.User
}

// Reconcile converts imported rows into valid records. Job rows are overlaid
// onto the defaults template so exports from older schemas still produce
// complete jobs; the history column is decoded from its JSON blob. Customer
// and user tables pass through with type conversion only. A missing table
// yields an empty collection.
func Reconcile(jobRows, customerRows, userRows []Row, defaults model.Job) (*Snapshot, error) {
	snap := &Snapshot{
		Jobs:      make([]model.Job, 0, len(jobRows)),
		Customers: make([]model.Customer, 0, len(customerRows)),
		Users:     make([]model.User, 0, len(userRows)),
	}

	for i, row := range jobRows {
		job, err := reconcileJob(row, defaults)
		if err != nil {
			return nil, fmt.Errorf("%w: jobs row %d: %v", ErrParse, i+2, err)
		}
		snap.Jobs = append(snap.Jobs, job)
	}

	for i, row := range customerRows {
		customer, err := reconcileCustomer(row)
		if err != nil {
			return nil, fmt.Errorf("%w: customers row %d: %v", ErrParse, i+2, err)
		}
		snap.Customers = append(snap.Customers, customer)
	}

	for i, row := range userRows {
		user, err := reconcileUser(row)
		if err != nil {
			return nil, fmt.Errorf("%w: users row %d: %v", ErrParse, i+2, err)
		}
		snap.Users = append(snap.Users, user)
	}

	return snap, nil
}

func reconcileJob(row Row, defaults model.Job) (model.Job, error) {
	job := defaults

	setString(row, "id", &job.ID)
	setString(row, "customerName", &job.CustomerName)
	setString(row, "customerContact", &job.CustomerContact)
	setString(row, "customerEmail", &job.CustomerEmail)
	setString(row, "description", &job.Description)
	setString(row, "assignedTo", &job.AssignedTo)

	if v, ok := nonEmpty(row, "type"); ok {
		job.Type = model.JobType(v)
	}
	if v, ok := nonEmpty(row, "priority"); ok {
		job.Priority = model.Priority(v)
	}
	if v, ok := nonEmpty(row, "currentStage"); ok {
		job.CurrentStage = model.JobStage(v)
	}

	var err error
	if job.Price, err = parseInt(row, "price", job.Price); err != nil {
		return model.Job{}, err
	}
	if job.Price < 0 {
		return model.Job{}, fmt.Errorf("price must be non-negative")
	}
	if job.CreatedAt, err = parseInt(row, "createdAt", job.CreatedAt); err != nil {
		return model.Job{}, err
	}
	if job.UpdatedAt, err = parseInt(row, "updatedAt", job.UpdatedAt); err != nil {
		return model.Job{}, err
	}
	if job.CompletedAt, err = parseInt(row, "completedAt", job.CompletedAt); err != nil {
		return model.Job{}, err
	}

	// History survives the flat tabular format as a JSON blob.
	job.History = []model.HistoryEntry{}
	if blob, ok := nonEmpty(row, "history"); ok {
		if err := json.Unmarshal([]byte(blob), &job.History); err != nil {
			return model.Job{}, fmt.Errorf("history: %v", err)
		}
	}

	return job, nil
}

func reconcileCustomer(row Row) (model.Customer, error) {
	var c model.Customer
	setString(row, "id", &c.ID)
	setString(row, "name", &c.Name)
	setString(row, "phone", &c.Phone)
	setString(row, "email", &c.Email)

	var err error
	if c.LastVisit, err = parseInt(row, "lastVisit", 0); err != nil {
		return model.Customer{}, err
	}
	visits, err := parseInt(row, "totalVisits", 0)
	if err != nil {
		return model.Customer{}, err
	}
	c.TotalVisits = int(visits)
	return c, nil
}

func reconcileUser(row Row) (model.User, error) {
	var u model.User
	setString(row, "id", &u.ID)
	setString(row, "username", &u.Username)
	setString(row, "name", &u.Name)
	if v, ok := nonEmpty(row, "role"); ok {
		u.Role = model.Role(v)
	}

	setString(row, "passwordHash", &u.PasswordHash)
	if u.PasswordHash == "" {
		// Legacy exports stored the credential in the clear; hash it on
		// the way in.
		if plain, ok := nonEmpty(row, "password"); ok {
			hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
			if err != nil {
				return model.User{}, fmt.Errorf("password: %v", err)
			}
			u.PasswordHash = string(hash)
		}
	}

	if v, ok := nonEmpty(row, "isActive"); ok {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return model.User{}, fmt.Errorf("isActive: %v", err)
		}
		u.IsActive = active
	} else {
		// Column absent from older exports; locking every account out
		// would be worse than letting them in.
		u.IsActive = true
	}
	return u, nil
}

func setString(row Row, key string, dst *string) {
	if v, ok := nonEmpty(row, key); ok {
		*dst = v
	}
}

func nonEmpty(row Row, key string) (string, bool) {
	v, ok := row[key]
	return v, ok && v != ""
}

// parseInt tolerates the scientific notation spreadsheet engines use for
// millisecond timestamps.
func parseInt(row Row, key string, fallback int64) (int64, error) {
	v, ok := nonEmpty(row, key)
	if !ok {
		return fallback, nil
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", key, err)
	}
	return int64(f), nil
}
