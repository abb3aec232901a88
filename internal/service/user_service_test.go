package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/internal/store"
)

func newUserService() (*service.UserService, *store.Memory) {
	st := store.NewMemory()
	var mu sync.Mutex
	return service.NewUserService(st, &mu), st
}

func TestUserServiceCreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService()

	created, err := svc.Create(ctx, &model.CreateUserRequest{
		Username: "alice",
		Password: "secret",
		Name:     "Alice (Counter)",
		Role:     model.RoleCounter,
	})
	require.NoError(t, err)
	assert.Empty(t, created.PasswordHash)

	user, err := svc.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCounter, user.Role)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserServiceDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService()

	req := &model.CreateUserRequest{
		Username: "alice", Password: "secret",
		Name: "Alice", Role: model.RoleCounter,
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestUserServiceInactiveGate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService()

	created, err := svc.Create(ctx, &model.CreateUserRequest{
		Username: "bob", Password: "secret",
		Name: "Bob (Designer)", Role: model.RoleDesigner,
	})
	require.NoError(t, err)

	_, err = svc.SetActive(ctx, created.ID, false)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "bob", "secret")
	assert.ErrorIs(t, err, service.ErrUserInactive)
}

func TestUserServiceSeedOnlyOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	svc, st := newUserService()

	require.NoError(t, svc.Seed(ctx))
	seeded := st.LoadUsers(ctx)
	require.NotEmpty(t, seeded)

	admin, err := svc.Authenticate(ctx, "admin", "123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	// Second call must not duplicate accounts.
	require.NoError(t, svc.Seed(ctx))
	assert.Len(t, st.LoadUsers(ctx), len(seeded))
}

func TestUserServiceSetActiveUnknownID(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.SetActive(context.Background(), "USER-404", true)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
