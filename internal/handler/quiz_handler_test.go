package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"fireforge/internal/domain"
	"fireforge/internal/dto"
	"fireforge/internal/handler"
	"fireforge/internal/middleware"
	"fireforge/internal/quiz"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockQuizService
type MockQuizService struct {
	GetCatalogFunc             func() *dto.CatalogResponse
	SubmitQuizFunc             func(ctx context.Context, req *dto.QuizSubmissionRequest) (*dto.QuizSubmissionResponse, error)
	ListQuizResultsFunc        func(ctx context.Context, status string) ([]dto.QuizResultResponse, error)
	UpdateQuizResultStatusFunc func(ctx context.Context, id string, status string) error
}

func (m *MockQuizService) GetCatalog() *dto.CatalogResponse {
	if m.GetCatalogFunc != nil {
		return m.GetCatalogFunc()
	}
	panic("MockQuizService.GetCatalogFunc not implemented")
}

func (m *MockQuizService) SubmitQuiz(ctx context.Context, req *dto.QuizSubmissionRequest) (*dto.QuizSubmissionResponse, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, req)
	}
	panic("MockQuizService.SubmitQuizFunc not implemented")
}

func (m *MockQuizService) ListQuizResults(ctx context.Context, status string) ([]dto.QuizResultResponse, error) {
	if m.ListQuizResultsFunc != nil {
		return m.ListQuizResultsFunc(ctx, status)
	}
	panic("MockQuizService.ListQuizResultsFunc not implemented")
}

func (m *MockQuizService) UpdateQuizResultStatus(ctx context.Context, id string, status string) error {
	if m.UpdateQuizResultStatusFunc != nil {
		return m.UpdateQuizResultStatusFunc(ctx, id, status)
	}
	panic("MockQuizService.UpdateQuizResultStatusFunc not implemented")
}

func newQuizTestApp(svc *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewQuizHandler(svc)
	app.Get("/api/quiz/questions", h.GetCatalog)
	app.Post("/api/quiz/submissions", h.SubmitQuiz)
	return app
}

func TestGetCatalog(t *testing.T) {
	svc := &MockQuizService{
		GetCatalogFunc: func() *dto.CatalogResponse {
			return &dto.CatalogResponse{
				Questions: quiz.Questions,
				Solutions: quiz.Solutions,
			}
		},
	}
	app := newQuizTestApp(svc)

	req := httptest.NewRequest("GET", "/api/quiz/questions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var catalog dto.CatalogResponse
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &catalog))
	assert.Len(t, catalog.Questions, len(quiz.Questions))
}

func TestSubmitQuiz_Created(t *testing.T) {
	svc := &MockQuizService{
		SubmitQuizFunc: func(ctx context.Context, req *dto.QuizSubmissionRequest) (*dto.QuizSubmissionResponse, error) {
			return &dto.QuizSubmissionResponse{
				Success:  true,
				Message:  "Diagnóstico procesado exitosamente",
				ResultID: "01A",
				Recommendation: dto.RecommendationResponse{
					Category: "ecommerce",
				},
			}, nil
		},
	}
	app := newQuizTestApp(svc)

	payload := `{"client_name":"Juan","email":"juan@example.com","answers":{"business_type":"comercio"}}`
	req := httptest.NewRequest("POST", "/api/quiz/submissions", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result dto.QuizSubmissionResponse
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	assert.Equal(t, "ecommerce", result.Recommendation.Category)
}

func TestSubmitQuiz_ValidationErrorsBecomeBadRequest(t *testing.T) {
	svc := &MockQuizService{
		SubmitQuizFunc: func(ctx context.Context, req *dto.QuizSubmissionRequest) (*dto.QuizSubmissionResponse, error) {
			return nil, domain.ValidationErrors{domain.NewMissingFieldError("answers.budget")}
		},
	}
	app := newQuizTestApp(svc)

	payload := `{"client_name":"Juan","email":"juan@example.com","answers":{}}`
	req := httptest.NewRequest("POST", "/api/quiz/submissions", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, string(domain.CodeValidation), errResp.Code)
	require.Len(t, errResp.Errors, 1)
	assert.Equal(t, "answers.budget", errResp.Errors[0].Field)
}

func TestSubmitQuiz_PersistenceErrorExposesCorrelationID(t *testing.T) {
	svc := &MockQuizService{
		SubmitQuizFunc: func(ctx context.Context, req *dto.QuizSubmissionRequest) (*dto.QuizSubmissionResponse, error) {
			return nil, domain.NewPersistenceError("01HYZCORR", assertErr{})
		},
	}
	app := newQuizTestApp(svc)

	payload := `{"client_name":"Juan","email":"juan@example.com","answers":{"business_type":"comercio"}}`
	req := httptest.NewRequest("POST", "/api/quiz/submissions", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var errResp middleware.ErrorResponse
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, string(domain.CodePersistence), errResp.Code)
	assert.Equal(t, "01HYZCORR", errResp.Details["correlation_id"])
}

func TestSubmitQuiz_MalformedBody(t *testing.T) {
	app := newQuizTestApp(&MockQuizService{})

	req := httptest.NewRequest("POST", "/api/quiz/submissions", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
