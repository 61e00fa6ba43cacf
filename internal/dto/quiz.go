package dto

import (
	"encoding/json"
	"fmt"

	"fireforge/internal/quiz"
)

// AnswerValue accepts either a bare string (single-choice) or an array of
// strings (multiple-choice) on the wire and normalizes both to a slice, so
// the scoring core never sees untyped data.
type AnswerValue []string

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AnswerValue{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*a = AnswerValue(many)
		return nil
	}
	return fmt.Errorf("answer must be a string or an array of strings")
}

// QuizSubmissionRequest is the payload posted when a respondent finishes the
// diagnostic and leaves their contact details.
type QuizSubmissionRequest struct {
	ClientName string                 `json:"client_name"`
	Email      string                 `json:"email"`
	Answers    map[string]AnswerValue `json:"answers"`
}

// AnswerSet converts the wire answers into the scoring engine's input type.
func (r *QuizSubmissionRequest) AnswerSet() quiz.AnswerSet {
	set := make(quiz.AnswerSet, len(r.Answers))
	for id, values := range r.Answers {
		set[id] = []string(values)
	}
	return set
}

// SecondaryResponse ranks a non-primary category for display.
type SecondaryResponse struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Percent  int    `json:"percent"`
}

// RecommendationResponse is the scored outcome returned to the respondent.
type RecommendationResponse struct {
	Category    string              `json:"category"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Benefits    []string            `json:"benefits"`
	Plans       []string            `json:"plans"`
	Scores      map[string]int      `json:"scores"`
	Secondary   []SecondaryResponse `json:"secondary,omitempty"`
}

// QuizSubmissionResponse reports the pipeline outcome. Success tracks
// persistence only; notification failures never surface here.
type QuizSubmissionResponse struct {
	Success        bool                   `json:"success"`
	Message        string                 `json:"message"`
	ResultID       string                 `json:"result_id,omitempty"`
	Recommendation RecommendationResponse `json:"recommendation"`
}

// CatalogResponse exposes the immutable question bank and solution profiles.
type CatalogResponse struct {
	Questions []quiz.Question                  `json:"questions"`
	Solutions map[quiz.Category]quiz.SolutionProfile `json:"solutions"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
