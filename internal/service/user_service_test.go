package service

import (
	"context"
	"testing"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, dom.ProviderLocal, created.AuthProvider)
	require.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "pw123", *created.PasswordHash)
	assert.Nil(t, created.GoogleID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Authenticate(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob", "a@x.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Authenticate(context.Background(), "nobody@x.com", "pw")
	assert.ErrorIs(t, err, ErrUnknownEmail)
}

func TestAuthenticate_BadPassword(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrBadPassword)
}

func TestAuthenticate_GoogleOnlyAccountFails(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	ctx := context.Background()

	gid := "g-1"
	_, err := repo.Create(ctx, dom.User{
		Username:     "alice",
		Email:        "a@x.com",
		GoogleID:     &gid,
		AuthProvider: dom.ProviderGoogle,
	})
	require.NoError(t, err)

	// No password hash on record: any password must fail, without panicking.
	_, err = NewUserService(repo).Authenticate(ctx, "a@x.com", "anything")
	assert.ErrorIs(t, err, ErrBadPassword)
}

func TestGetByEmail_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
