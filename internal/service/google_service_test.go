package service

import (
	"context"
	"testing"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_CreatesNewAccount(t *testing.T) {
	t.Parallel()
	svc := NewGoogleService(newFakeUserRepo())

	u, err := svc.Reconcile(context.Background(), "g-1", "Alice", "a@x.com", "http://pic")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "Alice", u.Username)
	assert.Equal(t, "a@x.com", u.Email)
	require.NotNil(t, u.GoogleID)
	assert.Equal(t, "g-1", *u.GoogleID)
	require.NotNil(t, u.ProfilePicture)
	assert.Equal(t, "http://pic", *u.ProfilePicture)
	assert.Equal(t, dom.ProviderGoogle, u.AuthProvider)
	assert.Nil(t, u.PasswordHash)
}

func TestReconcile_Idempotent(t *testing.T) {
	t.Parallel()
	svc := NewGoogleService(newFakeUserRepo())
	ctx := context.Background()

	first, err := svc.Reconcile(ctx, "g-1", "Alice", "a@x.com", "http://pic")
	require.NoError(t, err)

	second, err := svc.Reconcile(ctx, "g-1", "Alice Renamed", "a@x.com", "http://pic2")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice Renamed", second.Username)
	require.NotNil(t, second.ProfilePicture)
	assert.Equal(t, "http://pic2", *second.ProfilePicture)
}

func TestReconcile_LinksLocalAccount(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	ctx := context.Background()

	local, err := NewUserService(repo).Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)
	require.Nil(t, local.GoogleID)

	linked, err := NewGoogleService(repo).Reconcile(ctx, "g-1", "Alice", "a@x.com", "http://pic")
	require.NoError(t, err)

	// Same account, now linked; the local password survives.
	assert.Equal(t, local.ID, linked.ID)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "g-1", *linked.GoogleID)
	assert.Equal(t, dom.ProviderGoogle, linked.AuthProvider)
	require.NotNil(t, linked.PasswordHash)

	// The upgraded account still authenticates locally.
	got, err := NewUserService(repo).Authenticate(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, local.ID, got.ID)
}

func TestReconcile_LinkedAccountKeepsGoogleProvider(t *testing.T) {
	t.Parallel()
	svc := NewGoogleService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Reconcile(ctx, "g-1", "Alice", "a@x.com", "")
	require.NoError(t, err)

	u, err := svc.Reconcile(ctx, "g-1", "Alice", "a@x.com", "")
	require.NoError(t, err)
	assert.Equal(t, dom.ProviderGoogle, u.AuthProvider)
	assert.Nil(t, u.ProfilePicture)
}

func TestReconcile_RetriesOnInsertRace(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	// Insert reports a unique violation as if a concurrent callback won;
	// the retry must find the row and land on the existing-link branch.
	repo.failNextCreate = true

	u, err := NewGoogleService(repo).Reconcile(context.Background(), "g-1", "Alice", "a@x.com", "http://pic")
	require.NoError(t, err)
	require.NotNil(t, u.GoogleID)
	assert.Equal(t, "g-1", *u.GoogleID)
	assert.Equal(t, "Alice", u.Username)
}
