package dto

import "time"

// BlogPostRequest creates or updates an article from the admin dashboard.
type BlogPostRequest struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"cover_image"`
	Author     string   `json:"author"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

type BlogPostResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	CoverImage string    `json:"cover_image"`
	Author     string    `json:"author"`
	Tags       []string  `json:"tags"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PublishUpdateRequest toggles a post's public visibility.
type PublishUpdateRequest struct {
	Published bool `json:"published"`
}

// ClientRequest creates or updates a portfolio entry.
type ClientRequest struct {
	Name        string `json:"name"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
	Image       string `json:"image"`
	WebsiteURL  string `json:"website_url"`
	Category    string `json:"category"`
	Featured    bool   `json:"featured"`
	Order       int    `json:"order"`
}

type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	WebsiteURL  string    `json:"website_url"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardResponse carries the admin overview counters.
type DashboardResponse struct {
	TotalPosts   int `json:"total_posts"`
	TotalClients int `json:"total_clients"`
	NewLeads     int `json:"new_leads"`
	QuizResults  int `json:"quiz_results"`
}
