package service

import (
	"context"
	"encoding/json"
	"errors"
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

// PortfolioService serves the public client grid and its admin CRUD.
type PortfolioService interface {
	ListClients(ctx context.Context) ([]dto.ClientResponse, error)
	CreateClient(ctx context.Context, req *dto.ClientRequest) (*dto.ClientResponse, error)
	UpdateClient(ctx context.Context, id string, req *dto.ClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error
}

type portfolioService struct {
	repo      repository.ClientRepository
	cache     domain.Cache
	cacheTTL  time.Duration
	validator *validation.Validator
	logger    *zap.Logger
	sf        singleflight.Group
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(repo repository.ClientRepository, c domain.Cache, cacheTTL time.Duration, logger *zap.Logger) PortfolioService {
	return &portfolioService{
		repo:      repo,
		cache:     c,
		cacheTTL:  cacheTTL,
		validator: validation.NewValidator(),
		logger:    logger,
	}
}

// ListClients returns the portfolio in display order, cache-aside with
// singleflight on misses.
func (s *portfolioService) ListClients(ctx context.Context) ([]dto.ClientResponse, error) {
	key := cache.GenerateCacheKey("portfolio", "clients", "all")

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var responses []dto.ClientResponse
		if err := json.Unmarshal([]byte(cached), &responses); err == nil {
			return responses, nil
		}
		s.logger.Warn("Failed to decode cached client list", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		clients, err := s.repo.ListClients(ctx)
		if err != nil {
			return nil, domain.NewInternalError("failed to list clients", err)
		}
		responses := make([]dto.ClientResponse, 0, len(clients))
		for _, client := range clients {
			responses = append(responses, toClientResponse(client))
		}
		data, encErr := json.Marshal(responses)
		if encErr == nil {
			if cacheErr := s.cache.Set(ctx, key, string(data), s.cacheTTL); cacheErr != nil {
				s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(cacheErr))
			}
		}
		return responses, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dto.ClientResponse), nil
}

func (s *portfolioService) CreateClient(ctx context.Context, req *dto.ClientRequest) (*dto.ClientResponse, error) {
	if errs := s.validator.ValidateClientRequest(req); len(errs) > 0 {
		return nil, errs
	}

	client := &domain.PortfolioClient{
		ID:          util.NewULID(),
		Name:        req.Name,
		Tag:         req.Tag,
		Description: req.Description,
		Image:       req.Image,
		WebsiteURL:  req.WebsiteURL,
		Category:    req.Category,
		Featured:    req.Featured,
		Order:       req.Order,
	}
	if err := s.repo.CreateClient(ctx, client); err != nil {
		return nil, domain.NewInternalError("failed to create client", err)
	}

	s.invalidate(ctx)
	response := toClientResponse(client)
	return &response, nil
}

func (s *portfolioService) UpdateClient(ctx context.Context, id string, req *dto.ClientRequest) (*dto.ClientResponse, error) {
	if errs := s.validator.ValidateClientRequest(req); len(errs) > 0 {
		return nil, errs
	}

	client := &domain.PortfolioClient{
		ID:          id,
		Name:        req.Name,
		Tag:         req.Tag,
		Description: req.Description,
		Image:       req.Image,
		WebsiteURL:  req.WebsiteURL,
		Category:    req.Category,
		Featured:    req.Featured,
		Order:       req.Order,
	}
	if err := s.repo.UpdateClient(ctx, client); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	response := toClientResponse(client)
	return &response, nil
}

func (s *portfolioService) DeleteClient(ctx context.Context, id string) error {
	if err := s.repo.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) invalidate(ctx context.Context) {
	key := cache.GenerateCacheKey("portfolio", "clients", "all")
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func toClientResponse(client *domain.PortfolioClient) dto.ClientResponse {
	return dto.ClientResponse{
		ID:          client.ID,
		Name:        client.Name,
		Tag:         client.Tag,
		Description: client.Description,
		Image:       client.Image,
		WebsiteURL:  client.WebsiteURL,
		Category:    client.Category,
		Featured:    client.Featured,
		Order:       client.Order,
		CreatedAt:   client.CreatedAt,
	}
}
