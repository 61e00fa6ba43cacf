package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"fireforge/internal/config"
	"fireforge/internal/domain"
	"fireforge/internal/dto"
	"fireforge/internal/quiz"
	"fireforge/internal/repository"
	"fireforge/internal/util"
	"fireforge/internal/validation"

	"go.uber.org/zap"
)

// QuizService exposes the diagnostic catalog, runs the submission pipeline
// with server-side scoring, and backs the admin triage views.
type QuizService interface {
	GetCatalog() *dto.CatalogResponse
	SubmitQuiz(ctx context.Context, req *dto.QuizSubmissionRequest) (*dto.QuizSubmissionResponse, error)
	ListQuizResults(ctx context.Context, status string) ([]dto.QuizResultResponse, error)
	UpdateQuizResultStatus(ctx context.Context, id string, status string) error
}

type quizService struct {
	repo      repository.QuizResultRepository
	mailer    domain.Mailer
	validator *validation.Validator
	cfg       *config.Config
	logger    *zap.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	repo repository.QuizResultRepository,
	mailer domain.Mailer,
	cfg *config.Config,
	logger *zap.Logger,
) QuizService {
	return &quizService{
		repo:      repo,
		mailer:    mailer,
		validator: validation.NewValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}

// GetCatalog returns the immutable question bank and solution profiles. The
// catalog is compiled in, so no storage round trip is involved.
func (s *quizService) GetCatalog() *dto.CatalogResponse {
	return &dto.CatalogResponse{
		Questions: quiz.Questions,
		Solutions: quiz.Solutions,
	}
}

// SubmitQuiz validates the answers, scores them server side, persists the
// result and notifies both parties. Persistence gates success; the emails
// are best-effort and their failures only reach the logs.
func (s *quizService) SubmitQuiz(ctx context.Context, req *dto.QuizSubmissionRequest) (*dto.QuizSubmissionResponse, error) {
	if errs := s.validator.ValidateQuizSubmission(req); len(errs) > 0 {
		return nil, errs
	}

	scored := quiz.Score(req.AnswerSet())

	correlationID := util.NewULID()
	result := &domain.QuizResult{
		ID:                        util.NewULID(),
		ClientName:                strings.TrimSpace(req.ClientName),
		Email:                     strings.TrimSpace(req.Email),
		Answers:                   map[string][]string(req.AnswerSet()),
		Recommendation:            string(scored.Primary),
		RecommendationDescription: scored.Profile.Description,
		Benefits:                  scored.Profile.Benefits,
		SuggestedPlans:            scored.Profile.Plans,
		Scores:                    toScoreMap(scored.Scores),
		CorrelationID:             correlationID,
		Status:                    domain.StatusNuevo,
		CreatedAt:                 time.Now(),
	}

	s.logger.Info("Processing quiz submission",
		zap.String("correlation_id", correlationID),
		zap.String("recommendation", result.Recommendation),
	)

	if err := s.repo.CreateQuizResult(ctx, result); err != nil {
		s.logger.Error("Quiz result persistence failed",
			zap.String("correlation_id", correlationID),
			zap.Error(err),
		)
		return nil, domain.NewPersistenceError(correlationID, err)
	}

	s.notify(ctx, result, scored)

	return &dto.QuizSubmissionResponse{
		Success:        true,
		Message:        "Diagnóstico procesado exitosamente",
		ResultID:       result.ID,
		Recommendation: toRecommendationResponse(scored),
	}, nil
}

func (s *quizService) notify(ctx context.Context, result *domain.QuizResult, scored quiz.Result) {
	notifications := []notification{
		{
			Recipient: "admin",
			Message: domain.EmailMessage{
				From:    s.cfg.Mail.NotificationsFrom,
				To:      s.cfg.Mail.AdminEmail,
				ReplyTo: result.Email,
				Subject: fmt.Sprintf("🧠 Nuevo Diagnóstico: %s", result.ClientName),
				HTML:    adminQuizEmailHTML(result),
			},
		},
		{
			Recipient: "client",
			Message: domain.EmailMessage{
				From:    s.cfg.Mail.OnboardingFrom,
				To:      result.Email,
				Subject: "Tu Diagnóstico Digital",
				HTML:    clientQuizEmailHTML(result, scored),
			},
		},
	}

	for i, err := range settleAll(ctx, s.mailer, notifications) {
		if err != nil {
			s.logger.Warn("Notification send failed",
				zap.String("correlation_id", result.CorrelationID),
				zap.String("recipient", notifications[i].Recipient),
				zap.Error(err),
			)
		}
	}
}

// ListQuizResults returns stored diagnostics for the admin dashboard.
func (s *quizService) ListQuizResults(ctx context.Context, status string) ([]dto.QuizResultResponse, error) {
	if status != "" {
		if errs := s.validator.ValidateStatus(status); len(errs) > 0 {
			return nil, errs
		}
	}

	results, err := s.repo.ListQuizResults(ctx, status)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quiz results", err)
	}

	responses := make([]dto.QuizResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, dto.QuizResultResponse{
			ID:                        result.ID,
			ClientName:                result.ClientName,
			Email:                     result.Email,
			Answers:                   result.Answers,
			Recommendation:            result.Recommendation,
			RecommendationDescription: result.RecommendationDescription,
			Benefits:                  result.Benefits,
			SuggestedPlans:            result.SuggestedPlans,
			Scores:                    result.Scores,
			CorrelationID:             result.CorrelationID,
			Status:                    string(result.Status),
			CreatedAt:                 result.CreatedAt,
		})
	}
	return responses, nil
}

// UpdateQuizResultStatus moves a result through triage. Last writer wins.
func (s *quizService) UpdateQuizResultStatus(ctx context.Context, id string, status string) error {
	if errs := s.validator.ValidateStatus(status); len(errs) > 0 {
		return errs
	}
	return s.repo.UpdateQuizResultStatus(ctx, id, domain.Status(status))
}

func toScoreMap(v quiz.ScoreVector) map[string]int {
	scores := make(map[string]int, len(v))
	for category, score := range v {
		scores[string(category)] = score
	}
	return scores
}

func toRecommendationResponse(scored quiz.Result) dto.RecommendationResponse {
	secondary := make([]dto.SecondaryResponse, 0, len(scored.Secondary))
	for _, s := range scored.Secondary {
		secondary = append(secondary, dto.SecondaryResponse{
			Category: string(s.Category),
			Score:    s.Score,
			Percent:  s.Percent,
		})
	}
	return dto.RecommendationResponse{
		Category:    string(scored.Primary),
		Name:        scored.Profile.Name,
		Description: scored.Profile.Description,
		Benefits:    scored.Profile.Benefits,
		Plans:       scored.Profile.Plans,
		Scores:      toScoreMap(scored.Scores),
		Secondary:   secondary,
	}
}

func adminQuizEmailHTML(result *domain.QuizResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `
        <p><strong>Cliente:</strong> %s (%s)</p>
        <p><strong>Recomendación:</strong> %s</p>
        <ul>`,
		html.EscapeString(result.ClientName),
		html.EscapeString(result.Email),
		html.EscapeString(result.Recommendation),
	)
	for _, c := range quiz.Categories {
		fmt.Fprintf(&sb, `<li>%s: %d</li>`, c, result.Scores[string(c)])
	}
	sb.WriteString(`</ul>`)
	return sb.String()
}

func clientQuizEmailHTML(result *domain.QuizResult, scored quiz.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `
        <h1>Hola %s,</h1>
        <p>Según tu diagnóstico, la solución ideal para ti es <strong>%s</strong>.</p>
        <p>%s</p>
        <ul>`,
		html.EscapeString(result.ClientName),
		html.EscapeString(scored.Profile.Name),
		html.EscapeString(scored.Profile.Description),
	)
	for _, benefit := range scored.Profile.Benefits {
		fmt.Fprintf(&sb, `<li>%s</li>`, html.EscapeString(benefit))
	}
	sb.WriteString(`</ul><p>Planes sugeridos: `)
	sb.WriteString(html.EscapeString(strings.Join(scored.Profile.Plans, ", ")))
	sb.WriteString(`</p>`)
	return sb.String()
}
