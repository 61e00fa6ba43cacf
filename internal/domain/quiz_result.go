package domain

import "time"

// QuizResult is a respondent's completed diagnostic questionnaire together
// with the computed recommendation, denormalized so the admin dashboard can
// render it without re-scoring.
type QuizResult struct {
	ID                        string
	ClientName                string
	Email                     string
	Answers                   map[string][]string
	Recommendation            string
	RecommendationDescription string
	Benefits                  []string
	SuggestedPlans            []string
	Scores                    map[string]int
	CorrelationID             string
	Status                    Status
	CreatedAt                 time.Time
}
