package service

import (
	"context"
	"strings"

	"github.com/Praveenkumar07007/BlogApp/internal/cache"
	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"
	"github.com/Praveenkumar07007/BlogApp/internal/repo"

	"golang.org/x/sync/singleflight"
)

// BlogService handles blog post creation and listing.
type BlogService struct {
	repo  repo.BlogRepo
	cache *cache.BlogCache
	sf    singleflight.Group
}

// NewBlogService creates a BlogService. If c is nil, caching is disabled.
func NewBlogService(r repo.BlogRepo, c *cache.BlogCache) *BlogService {
	return &BlogService{repo: r, cache: c}
}

func (s *BlogService) Create(ctx context.Context, title, description string) (dom.Blog, error) {
	b, err := s.repo.Create(ctx, dom.Blog{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return dom.Blog{}, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	return b, nil
}

func (s *BlogService) List(ctx context.Context) ([]dom.Blog, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Blog), nil
	}
	return s.repo.List(ctx)
}
