package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyBlogList = "blog:list"

// BlogCache caches the blog post list in Redis.
type BlogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBlogCache returns a new BlogCache.
func NewBlogCache(rdb *redis.Client, ttl time.Duration) *BlogCache {
	return &BlogCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil if miss. A cached empty list comes
// back as a non-nil empty slice, so callers can tell it apart from a miss.
func (c *BlogCache) GetList(ctx context.Context) ([]dom.Blog, error) {
	b, err := c.rdb.Get(ctx, keyBlogList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeList(b)
}

// SetList stores the list in cache. A nil list is stored as empty so the
// cold empty-table path is not re-queried on every request.
func (c *BlogCache) SetList(ctx context.Context, list []dom.Blog) error {
	b, err := encodeList(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyBlogList, b, c.ttl).Err()
}

func encodeList(list []dom.Blog) ([]byte, error) {
	if list == nil {
		list = []dom.Blog{}
	}
	return json.Marshal(list)
}

func decodeList(b []byte) ([]dom.Blog, error) {
	list := []dom.Blog{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []dom.Blog{}
	}
	return list, nil
}

// Invalidate removes the cached list (cache invalidation on write).
func (c *BlogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyBlogList).Err()
}
