package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fireforge/internal/domain"
	"fireforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizResultRepository defines the interface for quiz result data operations.
type QuizResultRepository interface {
	CreateQuizResult(ctx context.Context, result *domain.QuizResult) error
	ListQuizResults(ctx context.Context, status string) ([]*domain.QuizResult, error)
	UpdateQuizResultStatus(ctx context.Context, id string, status domain.Status) error
	CountQuizResults(ctx context.Context) (int, error)
}

// sqlxQuizResultRepository implements QuizResultRepository using sqlx.
type sqlxQuizResultRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizResultRepository creates a new instance of sqlxQuizResultRepository.
func NewSQLXQuizResultRepository(db *sqlx.DB) QuizResultRepository {
	return &sqlxQuizResultRepository{db: db}
}

// CreateQuizResult inserts a completed diagnostic with its denormalized
// recommendation profile and raw scores.
func (r *sqlxQuizResultRepository) CreateQuizResult(ctx context.Context, result *domain.QuizResult) error {
	query := `INSERT INTO quiz_results (id, client_name, email, answers, recommendation, recommendation_description, benefits, suggested_plans, scores, correlation_id, status, created_at)
	          VALUES (:id, :client_name, :email, :answers, :recommendation, :recommendation_description, :benefits, :suggested_plans, :scores, :correlation_id, :status, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, toQuizResultModel(result))
	if err != nil {
		return fmt.Errorf("failed to create quiz result: %w", err)
	}
	return nil
}

// ListQuizResults returns results newest first, optionally filtered by status.
func (r *sqlxQuizResultRepository) ListQuizResults(ctx context.Context, status string) ([]*domain.QuizResult, error) {
	query := `SELECT id, client_name, email, answers, recommendation, recommendation_description, benefits, suggested_plans, scores, correlation_id, status, created_at
	          FROM quiz_results`
	args := map[string]interface{}{}
	if status != "" {
		query += ` WHERE status = :status`
		args["status"] = status
	}
	query += ` ORDER BY created_at DESC`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for ListQuizResults: %w", err)
	}
	defer stmt.Close()

	var rows []models.QuizResult
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to list quiz results: %w", err)
	}

	results := make([]*domain.QuizResult, 0, len(rows))
	for i := range rows {
		results = append(results, toDomainQuizResult(&rows[i]))
	}
	return results, nil
}

// UpdateQuizResultStatus moves a result through triage, last writer wins.
func (r *sqlxQuizResultRepository) UpdateQuizResultStatus(ctx context.Context, id string, status domain.Status) error {
	query := `UPDATE quiz_results SET status = :status WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":     id,
		"status": string(status),
	})
	if err != nil {
		return fmt.Errorf("failed to update quiz result status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("quiz result not found: %s", id))
	}
	return nil
}

// CountQuizResults returns the total number of stored diagnostics.
func (r *sqlxQuizResultRepository) CountQuizResults(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quiz_results`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count quiz results: %w", err)
	}
	return count, nil
}

func toQuizResultModel(result *domain.QuizResult) *models.QuizResult {
	return &models.QuizResult{
		ID:                        result.ID,
		ClientName:                result.ClientName,
		Email:                     result.Email,
		Answers:                   models.AnswerMap(result.Answers),
		Recommendation:            result.Recommendation,
		RecommendationDescription: result.RecommendationDescription,
		Benefits:                  models.StringSlice(result.Benefits),
		SuggestedPlans:            models.StringSlice(result.SuggestedPlans),
		Scores:                    models.IntMap(result.Scores),
		CorrelationID:             result.CorrelationID,
		Status:                    string(result.Status),
		CreatedAt:                 result.CreatedAt,
	}
}

func toDomainQuizResult(row *models.QuizResult) *domain.QuizResult {
	return &domain.QuizResult{
		ID:                        row.ID,
		ClientName:                row.ClientName,
		Email:                     row.Email,
		Answers:                   map[string][]string(row.Answers),
		Recommendation:            row.Recommendation,
		RecommendationDescription: row.RecommendationDescription,
		Benefits:                  []string(row.Benefits),
		SuggestedPlans:            []string(row.SuggestedPlans),
		Scores:                    map[string]int(row.Scores),
		CorrelationID:             row.CorrelationID,
		Status:                    domain.Status(row.Status),
		CreatedAt:                 row.CreatedAt,
	}
}
