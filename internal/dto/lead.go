package dto

import "time"

// LeadRequest is the contact-form payload.
type LeadRequest struct {
	ClientName  string `json:"client_name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	ServiceType string `json:"service_type"`
	Plan        string `json:"plan,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// LeadSubmissionResponse reports the contact-form pipeline outcome.
type LeadSubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  string `json:"lead_id,omitempty"`
}

// LeadResponse is the admin view of a stored lead.
type LeadResponse struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"client_name"`
	CompanyName   string    `json:"company_name"`
	Email         string    `json:"email"`
	Whatsapp      string    `json:"whatsapp"`
	ServiceType   string    `json:"service_type"`
	Plan          string    `json:"plan"`
	Notes         string    `json:"notes"`
	CorrelationID string    `json:"correlation_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizResultResponse is the admin view of a stored quiz result.
type QuizResultResponse struct {
	ID                        string              `json:"id"`
	ClientName                string              `json:"client_name"`
	Email                     string              `json:"email"`
	Answers                   map[string][]string `json:"answers"`
	Recommendation            string              `json:"recommendation"`
	RecommendationDescription string              `json:"recommendation_description"`
	Benefits                  []string            `json:"benefits"`
	SuggestedPlans            []string            `json:"suggested_plans"`
	Scores                    map[string]int      `json:"scores"`
	CorrelationID             string              `json:"correlation_id"`
	Status                    string              `json:"status"`
	CreatedAt                 time.Time           `json:"created_at"`
}

// StatusUpdateRequest moves a lead or quiz result through triage.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
