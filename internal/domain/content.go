package domain

import "time"

// BlogPost is an article managed from the admin dashboard. Only published
// posts are visible on the public surface.
type BlogPost struct {
	ID         string
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	CoverImage string
	Author     string
	Tags       []string
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PortfolioClient is an entry in the public client portfolio grid.
type PortfolioClient struct {
	ID          string
	Name        string
	Tag         string
	Description string
	Image       string
	WebsiteURL  string
	Category    string
	Featured    bool
	Order       int
	CreatedAt   time.Time
}
