package repository

import (
	"context"
	"fmt"
	"time"

	"fireforge/internal/domain"
	"fireforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ClientRepository defines the interface for portfolio client data operations.
type ClientRepository interface {
	CreateClient(ctx context.Context, client *domain.PortfolioClient) error
	UpdateClient(ctx context.Context, client *domain.PortfolioClient) error
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context) ([]*domain.PortfolioClient, error)
	CountClients(ctx context.Context) (int, error)
}

// sqlxClientRepository implements ClientRepository using sqlx.
type sqlxClientRepository struct {
	db *sqlx.DB
}

// NewSQLXClientRepository creates a new instance of sqlxClientRepository.
func NewSQLXClientRepository(db *sqlx.DB) ClientRepository {
	return &sqlxClientRepository{db: db}
}

func (r *sqlxClientRepository) CreateClient(ctx context.Context, client *domain.PortfolioClient) error {
	query := `INSERT INTO clients (id, name, tag, description, image, website_url, category, featured, display_order, created_at)
	          VALUES (:id, :name, :tag, :description, :image, :website_url, :category, :featured, :display_order, :created_at)`

	client.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, toClientModel(client))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *sqlxClientRepository) UpdateClient(ctx context.Context, client *domain.PortfolioClient) error {
	query := `UPDATE clients SET
	            name = :name,
	            tag = :tag,
	            description = :description,
	            image = :image,
	            website_url = :website_url,
	            category = :category,
	            featured = :featured,
	            display_order = :display_order
	          WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, toClientModel(client))
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("client not found: %s", client.ID))
	}
	return nil
}

func (r *sqlxClientRepository) DeleteClient(ctx context.Context, id string) error {
	result, err := r.db.NamedExecContext(ctx, `DELETE FROM clients WHERE id = :id`, map[string]interface{}{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("client not found: %s", id))
	}
	return nil
}

// ListClients returns the portfolio in display order.
func (r *sqlxClientRepository) ListClients(ctx context.Context) ([]*domain.PortfolioClient, error) {
	query := `SELECT id, name, tag, description, image, website_url, category, featured, display_order, created_at
	          FROM clients ORDER BY display_order ASC, created_at DESC`

	var rows []models.Client
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	clients := make([]*domain.PortfolioClient, 0, len(rows))
	for i := range rows {
		clients = append(clients, toDomainClient(&rows[i]))
	}
	return clients, nil
}

func (r *sqlxClientRepository) CountClients(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM clients`); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

func toClientModel(client *domain.PortfolioClient) *models.Client {
	return &models.Client{
		ID:           client.ID,
		Name:         client.Name,
		Tag:          client.Tag,
		Description:  client.Description,
		Image:        client.Image,
		WebsiteURL:   client.WebsiteURL,
		Category:     client.Category,
		Featured:     client.Featured,
		DisplayOrder: client.Order,
		CreatedAt:    client.CreatedAt,
	}
}

func toDomainClient(row *models.Client) *domain.PortfolioClient {
	return &domain.PortfolioClient{
		ID:          row.ID,
		Name:        row.Name,
		Tag:         row.Tag,
		Description: row.Description,
		Image:       row.Image,
		WebsiteURL:  row.WebsiteURL,
		Category:    row.Category,
		Featured:    row.Featured,
		Order:       row.DisplayOrder,
		CreatedAt:   row.CreatedAt,
	}
}
