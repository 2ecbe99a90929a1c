package service

import (
	"context"
	"sync"
	"testing"
	"time"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogRepo struct {
	mu     sync.Mutex
	nextID int64
	blogs  []dom.Blog
}

func (r *fakeBlogRepo) Create(_ context.Context, b dom.Blog) (dom.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now().UTC()
	r.blogs = append(r.blogs, b)
	return b, nil
}

func (r *fakeBlogRepo) List(_ context.Context) ([]dom.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dom.Blog, len(r.blogs))
	copy(out, r.blogs)
	return out, nil
}

func TestBlogCreateAndList(t *testing.T) {
	t.Parallel()
	svc := NewBlogService(&fakeBlogRepo{}, nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, "  My Post  ", " Hello ")
	require.NoError(t, err)
	assert.Equal(t, "My Post", b.Title)
	assert.Equal(t, "Hello", b.Description)
	assert.NotZero(t, b.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}
