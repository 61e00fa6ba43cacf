package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fireforge/internal/domain"
	"fireforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// BlogPostRepository defines the interface for blog post data operations.
type BlogPostRepository interface {
	CreatePost(ctx context.Context, post *domain.BlogPost) error
	UpdatePost(ctx context.Context, post *domain.BlogPost) error
	DeletePost(ctx context.Context, id string) error
	GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPublishedPosts(ctx context.Context) ([]*domain.BlogPost, error)
	ListAllPosts(ctx context.Context) ([]*domain.BlogPost, error)
	SetPublished(ctx context.Context, id string, published bool) error
	CountPosts(ctx context.Context) (int, error)
}

// sqlxBlogPostRepository implements BlogPostRepository using sqlx.
type sqlxBlogPostRepository struct {
	db *sqlx.DB
}

// NewSQLXBlogPostRepository creates a new instance of sqlxBlogPostRepository.
func NewSQLXBlogPostRepository(db *sqlx.DB) BlogPostRepository {
	return &sqlxBlogPostRepository{db: db}
}

const blogPostColumns = `id, title, slug, excerpt, content, cover_image, author, tags, published, created_at, updated_at`

func (r *sqlxBlogPostRepository) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	query := `INSERT INTO blog_posts (id, title, slug, excerpt, content, cover_image, author, tags, published, created_at, updated_at)
	          VALUES (:id, :title, :slug, :excerpt, :content, :cover_image, :author, :tags, :published, :created_at, :updated_at)`

	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	_, err := r.db.NamedExecContext(ctx, query, toBlogPostModel(post))
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *sqlxBlogPostRepository) UpdatePost(ctx context.Context, post *domain.BlogPost) error {
	query := `UPDATE blog_posts SET
	            title = :title,
	            slug = :slug,
	            excerpt = :excerpt,
	            content = :content,
	            cover_image = :cover_image,
	            author = :author,
	            tags = :tags,
	            published = :published,
	            updated_at = :updated_at
	          WHERE id = :id`

	post.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, toBlogPostModel(post))
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("blog post not found: %s", post.ID))
	}
	return nil
}

func (r *sqlxBlogPostRepository) DeletePost(ctx context.Context, id string) error {
	result, err := r.db.NamedExecContext(ctx, `DELETE FROM blog_posts WHERE id = :id`, map[string]interface{}{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("blog post not found: %s", id))
	}
	return nil
}

// GetPostBySlug returns nil, nil when the slug does not exist; the service
// layer decides whether that is an error.
func (r *sqlxBlogPostRepository) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = :slug`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetPostBySlug: %w", err)
	}
	defer stmt.Close()

	var row models.BlogPost
	if err := stmt.GetContext(ctx, &row, map[string]interface{}{"slug": slug}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog post by slug: %w", err)
	}
	return toDomainBlogPost(&row), nil
}

func (r *sqlxBlogPostRepository) ListPublishedPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE published = TRUE ORDER BY created_at DESC`
	return r.listPosts(ctx, query)
}

func (r *sqlxBlogPostRepository) ListAllPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC`
	return r.listPosts(ctx, query)
}

func (r *sqlxBlogPostRepository) listPosts(ctx context.Context, query string) ([]*domain.BlogPost, error) {
	var rows []models.BlogPost
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	posts := make([]*domain.BlogPost, 0, len(rows))
	for i := range rows {
		posts = append(posts, toDomainBlogPost(&rows[i]))
	}
	return posts, nil
}

func (r *sqlxBlogPostRepository) SetPublished(ctx context.Context, id string, published bool) error {
	query := `UPDATE blog_posts SET published = :published, updated_at = :updated_at WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"published":  published,
		"updated_at": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to update publish state: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("blog post not found: %s", id))
	}
	return nil
}

func (r *sqlxBlogPostRepository) CountPosts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM blog_posts`); err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}

func toBlogPostModel(post *domain.BlogPost) *models.BlogPost {
	return &models.BlogPost{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Content:    post.Content,
		CoverImage: post.CoverImage,
		Author:     post.Author,
		Tags:       models.StringSlice(post.Tags),
		Published:  post.Published,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

func toDomainBlogPost(row *models.BlogPost) *domain.BlogPost {
	return &domain.BlogPost{
		ID:         row.ID,
		Title:      row.Title,
		Slug:       row.Slug,
		Excerpt:    row.Excerpt,
		Content:    row.Content,
		CoverImage: row.CoverImage,
		Author:     row.Author,
		Tags:       []string(row.Tags),
		Published:  row.Published,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
