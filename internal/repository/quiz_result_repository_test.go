package repository

import (
	"context"
	"testing"
	"time"

	"fireforge/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQuizResultTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func sampleQuizResult() *domain.QuizResult {
	return &domain.QuizResult{
		ID:         "01HYZRES00000000000000000A",
		ClientName: "Juan Díaz",
		Email:      "juan@example.com",
		Answers: map[string][]string{
			"business_type": {"comercio"},
			"main_goal":     {"ventas_online"},
		},
		Recommendation:            "ecommerce",
		RecommendationDescription: "Plataforma completa para vender productos en línea.",
		Benefits:                  []string{"Catálogo de productos"},
		SuggestedPlans:            []string{"Tienda Start"},
		Scores:                    map[string]int{"landing": 1, "ecommerce": 6, "sistema": 0, "chatbot": 0},
		CorrelationID:             "01HYZCORR0000000000000000B",
		Status:                    domain.StatusNuevo,
		CreatedAt:                 time.Now(),
	}
}

func TestCreateQuizResult(t *testing.T) {
	db, mock := setupQuizResultTestDB(t)
	defer db.Close()
	repo := NewSQLXQuizResultRepository(db)

	mock.ExpectExec("INSERT INTO quiz_results").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateQuizResult(context.Background(), sampleQuizResult())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuizResults_DecodesJSONColumns(t *testing.T) {
	db, mock := setupQuizResultTestDB(t)
	defer db.Close()
	repo := NewSQLXQuizResultRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "client_name", "email", "answers", "recommendation",
		"recommendation_description", "benefits", "suggested_plans", "scores",
		"correlation_id", "status", "created_at",
	}).AddRow(
		"01A", "Juan", "juan@example.com",
		[]byte(`{"business_type":["comercio"]}`), "ecommerce",
		"desc", []byte(`["Catálogo de productos"]`), []byte(`["Tienda Start"]`),
		[]byte(`{"landing":1,"ecommerce":6,"sistema":0,"chatbot":0}`),
		"01C", "nuevo", now,
	)

	mock.ExpectPrepare("SELECT (.+) FROM quiz_results").
		ExpectQuery().
		WillReturnRows(rows)

	results, err := repo.ListQuizResults(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"comercio"}, results[0].Answers["business_type"])
	assert.Equal(t, 6, results[0].Scores["ecommerce"])
	assert.Equal(t, []string{"Tienda Start"}, results[0].SuggestedPlans)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuizResultStatus_NotFound(t *testing.T) {
	db, mock := setupQuizResultTestDB(t)
	defer db.Close()
	repo := NewSQLXQuizResultRepository(db)

	mock.ExpectExec("UPDATE quiz_results SET status =").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateQuizResultStatus(context.Background(), "missing", domain.StatusConvertido)

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestQuizResultModelRoundTrip(t *testing.T) {
	result := sampleQuizResult()

	back := toDomainQuizResult(toQuizResultModel(result))

	assert.Equal(t, result, back)
}
