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

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DashboardService aggregates the admin overview counters. The counters are
// cached briefly so a dashboard full of polling widgets does not hammer the
// database with COUNT queries.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	blogRepo   repository.BlogPostRepository
	clientRepo repository.ClientRepository
	leadRepo   repository.LeadRepository
	quizRepo   repository.QuizResultRepository
	cache      domain.Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
	sf         singleflight.Group
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	blogRepo repository.BlogPostRepository,
	clientRepo repository.ClientRepository,
	leadRepo repository.LeadRepository,
	quizRepo repository.QuizResultRepository,
	c domain.Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		blogRepo:   blogRepo,
		clientRepo: clientRepo,
		leadRepo:   leadRepo,
		quizRepo:   quizRepo,
		cache:      c,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	key := cache.GenerateCacheKey("dashboard", "counters", "summary")

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var response dto.DashboardResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		totalPosts, err := s.blogRepo.CountPosts(ctx)
		if err != nil {
			return nil, domain.NewInternalError("failed to count posts", err)
		}
		totalClients, err := s.clientRepo.CountClients(ctx)
		if err != nil {
			return nil, domain.NewInternalError("failed to count clients", err)
		}
		newLeads, err := s.leadRepo.CountLeadsByStatus(ctx, domain.StatusNuevo)
		if err != nil {
			return nil, domain.NewInternalError("failed to count leads", err)
		}
		quizResults, err := s.quizRepo.CountQuizResults(ctx)
		if err != nil {
			return nil, domain.NewInternalError("failed to count quiz results", err)
		}

		response := &dto.DashboardResponse{
			TotalPosts:   totalPosts,
			TotalClients: totalClients,
			NewLeads:     newLeads,
			QuizResults:  quizResults,
		}
		if data, encErr := json.Marshal(response); encErr == nil {
			if cacheErr := s.cache.Set(ctx, key, string(data), s.cacheTTL); cacheErr != nil {
				s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(cacheErr))
			}
		}
		return response, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.DashboardResponse), nil
}
