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

// LeadRepository defines the interface for lead data operations.
type LeadRepository interface {
	CreateLead(ctx context.Context, lead *domain.Lead) error
	ListLeads(ctx context.Context, status string) ([]*domain.Lead, error)
	UpdateLeadStatus(ctx context.Context, id string, status domain.Status) error
	CountLeadsByStatus(ctx context.Context, status domain.Status) (int, error)
}

// sqlxLeadRepository implements LeadRepository using sqlx.
type sqlxLeadRepository struct {
	db *sqlx.DB
}

// NewSQLXLeadRepository creates a new instance of sqlxLeadRepository.
func NewSQLXLeadRepository(db *sqlx.DB) LeadRepository {
	return &sqlxLeadRepository{db: db}
}

// CreateLead inserts a new lead. Each submission is a fresh row keyed by its
// own generated id; there is no dedup against resubmissions.
func (r *sqlxLeadRepository) CreateLead(ctx context.Context, lead *domain.Lead) error {
	query := `INSERT INTO leads (id, client_name, company_name, email, whatsapp, service_type, plan, notes, correlation_id, status, created_at)
	          VALUES (:id, :client_name, :company_name, :email, :whatsapp, :service_type, :plan, :notes, :correlation_id, :status, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, toLeadModel(lead))
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// ListLeads returns leads newest first, optionally filtered by status.
func (r *sqlxLeadRepository) ListLeads(ctx context.Context, status string) ([]*domain.Lead, error) {
	query := `SELECT id, client_name, company_name, email, whatsapp, service_type, plan, notes, correlation_id, status, created_at
	          FROM leads`
	args := map[string]interface{}{}
	if status != "" {
		query += ` WHERE status = :status`
		args["status"] = status
	}
	query += ` ORDER BY created_at DESC`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for ListLeads: %w", err)
	}
	defer stmt.Close()

	var rows []models.Lead
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := make([]*domain.Lead, 0, len(rows))
	for i := range rows {
		leads = append(leads, toDomainLead(&rows[i]))
	}
	return leads, nil
}

// UpdateLeadStatus is a last-writer-wins update; concurrent admin edits to
// the same lead silently overwrite each other.
func (r *sqlxLeadRepository) UpdateLeadStatus(ctx context.Context, id string, status domain.Status) error {
	query := `UPDATE leads SET status = :status WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":     id,
		"status": string(status),
	})
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("lead not found: %s", id))
	}
	return nil
}

// CountLeadsByStatus counts leads, optionally restricted to one status.
func (r *sqlxLeadRepository) CountLeadsByStatus(ctx context.Context, status domain.Status) (int, error) {
	query := `SELECT COUNT(*) FROM leads`
	args := map[string]interface{}{}
	if status != "" {
		query += ` WHERE status = :status`
		args["status"] = string(status)
	}

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare query for CountLeadsByStatus: %w", err)
	}
	defer stmt.Close()

	var count int
	if err := stmt.GetContext(ctx, &count, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

func toLeadModel(lead *domain.Lead) *models.Lead {
	return &models.Lead{
		ID:            lead.ID,
		ClientName:    lead.ClientName,
		CompanyName:   lead.CompanyName,
		Email:         lead.Email,
		Whatsapp:      lead.Whatsapp,
		ServiceType:   lead.ServiceType,
		Plan:          lead.Plan,
		Notes:         lead.Notes,
		CorrelationID: lead.CorrelationID,
		Status:        string(lead.Status),
		CreatedAt:     lead.CreatedAt,
	}
}

func toDomainLead(row *models.Lead) *domain.Lead {
	return &domain.Lead{
		ID:            row.ID,
		ClientName:    row.ClientName,
		CompanyName:   row.CompanyName,
		Email:         row.Email,
		Whatsapp:      row.Whatsapp,
		ServiceType:   row.ServiceType,
		Plan:          row.Plan,
		Notes:         row.Notes,
		CorrelationID: row.CorrelationID,
		Status:        domain.Status(row.Status),
		CreatedAt:     row.CreatedAt,
	}
}
