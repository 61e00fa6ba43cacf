package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fireforge/internal/cache"
	"fireforge/internal/domain"
	"fireforge/internal/dto"
	"fireforge/internal/repository"
	"fireforge/internal/util"
	"fireforge/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// BlogService serves public article reads through the cache and handles the
// admin-side CRUD that invalidates it.
type BlogService interface {
	ListPublishedPosts(ctx context.Context) ([]dto.BlogPostResponse, error)
	GetPublishedPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error)
	ListAllPosts(ctx context.Context) ([]dto.BlogPostResponse, error)
	CreatePost(ctx context.Context, req *dto.BlogPostRequest) (*dto.BlogPostResponse, error)
	UpdatePost(ctx context.Context, id string, req *dto.BlogPostRequest) (*dto.BlogPostResponse, error)
	DeletePost(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) error
}

type blogService struct {
	repo      repository.BlogPostRepository
	cache     domain.Cache
	cacheTTL  time.Duration
	validator *validation.Validator
	logger    *zap.Logger
	sf        singleflight.Group
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repository.BlogPostRepository, c domain.Cache, cacheTTL time.Duration, logger *zap.Logger) BlogService {
	return &blogService{
		repo:      repo,
		cache:     c,
		cacheTTL:  cacheTTL,
		validator: validation.NewValidator(),
		logger:    logger,
	}
}

// ListPublishedPosts returns the public article list, cache-aside with
// singleflight so a cold cache triggers one database read, not one per
// concurrent request.
func (s *blogService) ListPublishedPosts(ctx context.Context) ([]dto.BlogPostResponse, error) {
	key := cache.GenerateCacheKey("blog", "posts", "published")

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var responses []dto.BlogPostResponse
		if err := json.Unmarshal([]byte(cached), &responses); err == nil {
			return responses, nil
		}
		s.logger.Warn("Failed to decode cached post list", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		posts, err := s.repo.ListPublishedPosts(ctx)
		if err != nil {
			return nil, domain.NewInternalError("failed to list published posts", err)
		}
		responses := make([]dto.BlogPostResponse, 0, len(posts))
		for _, post := range posts {
			responses = append(responses, toBlogPostResponse(post))
		}
		s.cacheSet(ctx, key, responses)
		return responses, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dto.BlogPostResponse), nil
}

// GetPublishedPost returns one article by slug. Missing slugs and drafts both
// come back as not found so the public surface never leaks unpublished work.
func (s *blogService) GetPublishedPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	key := cache.GenerateCacheKey("blog", "post", slug)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var response dto.BlogPostResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
		s.logger.Warn("Failed to decode cached post", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		post, err := s.repo.GetPostBySlug(ctx, slug)
		if err != nil {
			return nil, domain.NewInternalError("failed to get post", err)
		}
		if post == nil || !post.Published {
			return nil, domain.NewNotFoundError(fmt.Sprintf("post not found: %s", slug))
		}
		response := toBlogPostResponse(post)
		s.cacheSet(ctx, key, response)
		return &response, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.BlogPostResponse), nil
}

// ListAllPosts returns every post, drafts included, for the admin dashboard.
// Admin reads skip the cache so editors always see current state.
func (s *blogService) ListAllPosts(ctx context.Context) ([]dto.BlogPostResponse, error) {
	posts, err := s.repo.ListAllPosts(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list posts", err)
	}
	responses := make([]dto.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toBlogPostResponse(post))
	}
	return responses, nil
}

func (s *blogService) CreatePost(ctx context.Context, req *dto.BlogPostRequest) (*dto.BlogPostResponse, error) {
	if errs := s.validator.ValidateBlogPostRequest(req); len(errs) > 0 {
		return nil, errs
	}

	post := &domain.BlogPost{
		ID:         util.NewULID(),
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Tags:       req.Tags,
		Published:  req.Published,
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, domain.NewInternalError("failed to create post", err)
	}

	s.invalidate(ctx, post.Slug)
	response := toBlogPostResponse(post)
	return &response, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id string, req *dto.BlogPostRequest) (*dto.BlogPostResponse, error) {
	if errs := s.validator.ValidateBlogPostRequest(req); len(errs) > 0 {
		return nil, errs
	}

	post := &domain.BlogPost{
		ID:         id,
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Tags:       req.Tags,
		Published:  req.Published,
	}
	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	s.invalidate(ctx, post.Slug)
	response := toBlogPostResponse(post)
	return &response, nil
}

func (s *blogService) DeletePost(ctx context.Context, id string) error {
	if err := s.repo.DeletePost(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "")
	return nil
}

func (s *blogService) SetPublished(ctx context.Context, id string, published bool) error {
	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		return err
	}
	s.invalidate(ctx, "")
	return nil
}

func (s *blogService) cacheSet(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode cache value", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate drops the list key and, when known, the single-post key. Stale
// slug keys that cannot be derived here simply age out with the TTL.
func (s *blogService) invalidate(ctx context.Context, slug string) {
	keys := []string{cache.GenerateCacheKey("blog", "posts", "published")}
	if slug != "" {
		keys = append(keys, cache.GenerateCacheKey("blog", "post", slug))
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func toBlogPostResponse(post *domain.BlogPost) dto.BlogPostResponse {
	return dto.BlogPostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Content:    post.Content,
		CoverImage: post.CoverImage,
		Author:     post.Author,
		Tags:       post.Tags,
		Published:  post.Published,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}
