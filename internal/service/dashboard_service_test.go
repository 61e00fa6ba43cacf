package service

import (
	"context"
	"testing"
	"time"

	"fireforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetDashboard_AggregatesCounters(t *testing.T) {
	blogRepo := new(MockBlogPostRepository)
	clientRepo := new(MockClientRepository)
	leadRepo := new(MockLeadRepository)
	quizRepo := new(MockQuizResultRepository)
	cache := new(MockCache)

	cache.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, 30*time.Second).Return(nil)
	blogRepo.On("CountPosts", mock.Anything).Return(4, nil)
	clientRepo.On("CountClients", mock.Anything).Return(7, nil)
	leadRepo.On("CountLeadsByStatus", mock.Anything, domain.StatusNuevo).Return(2, nil)
	quizRepo.On("CountQuizResults", mock.Anything).Return(9, nil)

	svc := NewDashboardService(blogRepo, clientRepo, leadRepo, quizRepo, cache, 30*time.Second, zap.NewNop())
	dashboard, err := svc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, dashboard.TotalPosts)
	assert.Equal(t, 7, dashboard.TotalClients)
	assert.Equal(t, 2, dashboard.NewLeads)
	assert.Equal(t, 9, dashboard.QuizResults)
	cache.AssertExpectations(t)
}

func TestGetDashboard_CacheHitSkipsCounting(t *testing.T) {
	blogRepo := new(MockBlogPostRepository)
	cache := new(MockCache)

	cache.On("Get", mock.Anything, mock.Anything).
		Return(`{"total_posts":1,"total_clients":2,"new_leads":3,"quiz_results":4}`, nil)

	svc := NewDashboardService(blogRepo, new(MockClientRepository), new(MockLeadRepository), new(MockQuizResultRepository), cache, 30*time.Second, zap.NewNop())
	dashboard, err := svc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, dashboard.NewLeads)
	blogRepo.AssertNotCalled(t, "CountPosts", mock.Anything)
}
