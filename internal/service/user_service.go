package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/store"
)

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserInactive is returned when a deactivated account logs in.
	ErrUserInactive = errors.New("user is deactivated")
	// ErrUserExists is returned when the username is already taken.
	ErrUserExists = errors.New("username already exists")
	// ErrUserNotFound is returned when the referenced user id is absent.
	ErrUserNotFound = errors.New("user not found")
)

// UserService handles staff accounts and login checks.
type UserService struct {
	store store.Store
	mu    *sync.Mutex
}

func NewUserService(st store.Store, mu *sync.Mutex) *UserService {
	return &UserService{store: st, mu: mu}
}

// Authenticate verifies the credential and the active flag.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	for _, u := range s.store.LoadUsers(ctx) {
		if u.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		if !u.IsActive {
			return nil, ErrUserInactive
		}
		return &u, nil
	}
	return nil, ErrInvalidCredentials
}

// List returns every account with credentials stripped.
func (s *UserService) List(ctx context.Context) []model.User {
	users := s.store.LoadUsers(ctx)
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out
}

// Create adds a staff account.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.store.LoadUsers(ctx)
	for _, u := range users {
		if u.Username == req.Username {
			return nil, ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:           "USER-" + uuid.New().String()[:8],
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.store.SaveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// SetActive toggles whether an account may log in.
func (s *UserService) SetActive(ctx context.Context, userID string, active bool) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.store.LoadUsers(ctx)
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		users[i].IsActive = active
		if err := s.store.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
		sanitized := users[i].Sanitized()
		return &sanitized, nil
	}
	return nil, ErrUserNotFound
}

// Seed creates the default accounts on a fresh store, mirroring the demo
// data the shop started with.
func (s *UserService) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.store.LoadUsers(ctx)) > 0 {
		return nil
	}

	seed := []struct {
		username, password, name string
		role                     model.Role
	}{
		{"admin", "123", "System Admin", model.RoleAdmin},
		{"alice", "123", "Alice (Counter)", model.RoleCounter},
		{"bob", "123", "Bob (Designer)", model.RoleDesigner},
		{"eva", "123", "Eva (Cashier)", model.RoleCashier},
	}

	users := make([]model.User, 0, len(seed))
	for _, su := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, model.User{
			ID:           "USER-" + uuid.New().String()[:8],
			Username:     su.username,
			PasswordHash: string(hash),
			Name:         su.name,
			Role:         su.role,
			IsActive:     true,
		})
	}

	log.Printf("Seeding %d default users", len(users))
	return s.store.SaveUsers(ctx, users)
}
