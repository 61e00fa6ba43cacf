package models

import "time"

// Lead is the database row for a contact-form submission.
type Lead struct {
	ID            string    `db:"id"`
	ClientName    string    `db:"client_name"`
	CompanyName   string    `db:"company_name"`
	Email         string    `db:"email"`
	Whatsapp      string    `db:"whatsapp"`
	ServiceType   string    `db:"service_type"`
	Plan          string    `db:"plan"`
	Notes         string    `db:"notes"`
	CorrelationID string    `db:"correlation_id"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

// QuizResult is the database row for a completed diagnostic.
type QuizResult struct {
	ID                        string      `db:"id"`
	ClientName                string      `db:"client_name"`
	Email                     string      `db:"email"`
	Answers                   AnswerMap   `db:"answers"`
	Recommendation            string      `db:"recommendation"`
	RecommendationDescription string      `db:"recommendation_description"`
	Benefits                  StringSlice `db:"benefits"`
	SuggestedPlans            StringSlice `db:"suggested_plans"`
	Scores                    IntMap      `db:"scores"`
	CorrelationID             string      `db:"correlation_id"`
	Status                    string      `db:"status"`
	CreatedAt                 time.Time   `db:"created_at"`
}

// BlogPost is the database row for an article.
type BlogPost struct {
	ID         string      `db:"id"`
	Title      string      `db:"title"`
	Slug       string      `db:"slug"`
	Excerpt    string      `db:"excerpt"`
	Content    string      `db:"content"`
	CoverImage string      `db:"cover_image"`
	Author     string      `db:"author"`
	Tags       StringSlice `db:"tags"`
	Published  bool        `db:"published"`
	CreatedAt  time.Time   `db:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at"`
}

// Client is the database row for a portfolio entry.
type Client struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Tag         string    `db:"tag"`
	Description string    `db:"description"`
	Image       string    `db:"image"`
	WebsiteURL  string    `db:"website_url"`
	Category    string    `db:"category"`
	Featured    bool      `db:"featured"`
	DisplayOrder int      `db:"display_order"`
	CreatedAt   time.Time `db:"created_at"`
}
