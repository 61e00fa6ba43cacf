package service

import (
	"context"
	"time"

	"fireforge/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockLeadRepository ---
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) CreateLead(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) ListLeads(ctx context.Context, status string) ([]*domain.Lead, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateLeadStatus(ctx context.Context, id string, status domain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) CountLeadsByStatus(ctx context.Context, status domain.Status) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// --- MockQuizResultRepository ---
type MockQuizResultRepository struct {
	mock.Mock
}

func (m *MockQuizResultRepository) CreateQuizResult(ctx context.Context, result *domain.QuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockQuizResultRepository) ListQuizResults(ctx context.Context, status string) ([]*domain.QuizResult, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizResult), args.Error(1)
}

func (m *MockQuizResultRepository) UpdateQuizResultStatus(ctx context.Context, id string, status domain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockQuizResultRepository) CountQuizResults(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- MockBlogPostRepository ---
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) UpdatePost(ctx context.Context, post *domain.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) DeletePost(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogPostRepository) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) ListPublishedPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) ListAllPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) SetPublished(ctx context.Context, id string, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

func (m *MockBlogPostRepository) CountPosts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- MockClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) CreateClient(ctx context.Context, client *domain.PortfolioClient) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client *domain.PortfolioClient) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]*domain.PortfolioClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PortfolioClient), args.Error(1)
}

func (m *MockClientRepository) CountClients(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- MockMailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// --- MockLeadBackup ---
type MockLeadBackup struct {
	mock.Mock
}

func (m *MockLeadBackup) Backup(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
