package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"fireforge/internal/config"
	"fireforge/internal/domain"
	"fireforge/internal/dto"
	"fireforge/internal/repository"
	"fireforge/internal/util"
	"fireforge/internal/validation"

	"go.uber.org/zap"
)

// LeadService owns the contact-form submission pipeline and the admin
// triage operations over stored leads.
type LeadService interface {
	SubmitLead(ctx context.Context, req *dto.LeadRequest) (*dto.LeadSubmissionResponse, error)
	ListLeads(ctx context.Context, status string) ([]dto.LeadResponse, error)
	UpdateLeadStatus(ctx context.Context, id string, status string) error
}

type leadService struct {
	repo      repository.LeadRepository
	mailer    domain.Mailer
	backup    domain.LeadBackup // nil when the legacy mirror is not configured
	validator *validation.Validator
	cfg       *config.Config
	logger    *zap.Logger
}

// NewLeadService creates a new LeadService. All collaborators are injected
// so tests can substitute fakes; none of them is a package-level singleton.
func NewLeadService(
	repo repository.LeadRepository,
	mailer domain.Mailer,
	backup domain.LeadBackup,
	cfg *config.Config,
	logger *zap.Logger,
) LeadService {
	return &leadService{
		repo:      repo,
		mailer:    mailer,
		backup:    backup,
		validator: validation.NewValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}

// SubmitLead runs the pipeline: validate, persist, mirror, notify.
//
// Only validation and persistence can fail the operation. The spreadsheet
// mirror and both emails are best-effort: their failures are logged with the
// correlation id and swallowed, so the caller sees success whenever the
// durable write landed.
func (s *leadService) SubmitLead(ctx context.Context, req *dto.LeadRequest) (*dto.LeadSubmissionResponse, error) {
	if errs := s.validator.ValidateLeadRequest(req); len(errs) > 0 {
		return nil, errs
	}

	correlationID := util.NewULID()
	lead := domain.NewLead(
		util.NewULID(),
		correlationID,
		strings.TrimSpace(req.ClientName),
		strings.TrimSpace(req.CompanyName),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Whatsapp),
		strings.TrimSpace(req.ServiceType),
		strings.TrimSpace(req.Plan),
		strings.TrimSpace(req.Notes),
	)

	s.logger.Info("Processing lead",
		zap.String("correlation_id", correlationID),
		zap.String("company", lead.CompanyName),
	)

	if err := s.repo.CreateLead(ctx, lead); err != nil {
		s.logger.Error("Lead persistence failed",
			zap.String("correlation_id", correlationID),
			zap.Error(err),
		)
		return nil, domain.NewPersistenceError(correlationID, err)
	}

	if s.backup != nil {
		if err := s.backup.Backup(ctx, lead); err != nil {
			s.logger.Warn("Lead backup mirror failed",
				zap.String("correlation_id", correlationID),
				zap.Error(err),
			)
		}
	}

	s.notify(ctx, lead)

	return &dto.LeadSubmissionResponse{
		Success: true,
		Message: "Solicitud procesada exitosamente",
		LeadID:  lead.ID,
	}, nil
}

func (s *leadService) notify(ctx context.Context, lead *domain.Lead) {
	notifications := []notification{
		{
			Recipient: "admin",
			Message: domain.EmailMessage{
				From:    s.cfg.Mail.NotificationsFrom,
				To:      s.cfg.Mail.AdminEmail,
				ReplyTo: lead.Email,
				Subject: fmt.Sprintf("🔥 Nuevo Lead: %s", lead.CompanyName),
				HTML:    adminLeadEmailHTML(lead),
			},
		},
		{
			Recipient: "client",
			Message: domain.EmailMessage{
				From:    s.cfg.Mail.OnboardingFrom,
				To:      lead.Email,
				Subject: "Confirmación de Solicitud",
				HTML:    clientLeadEmailHTML(lead),
			},
		},
	}

	for i, err := range settleAll(ctx, s.mailer, notifications) {
		if err != nil {
			s.logger.Warn("Notification send failed",
				zap.String("correlation_id", lead.CorrelationID),
				zap.String("recipient", notifications[i].Recipient),
				zap.Error(err),
			)
		}
	}
}

// ListLeads returns leads for the admin dashboard, optionally filtered by
// triage status.
func (s *leadService) ListLeads(ctx context.Context, status string) ([]dto.LeadResponse, error) {
	if status != "" {
		if errs := s.validator.ValidateStatus(status); len(errs) > 0 {
			return nil, errs
		}
	}

	leads, err := s.repo.ListLeads(ctx, status)
	if err != nil {
		return nil, domain.NewInternalError("failed to list leads", err)
	}

	responses := make([]dto.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, toLeadResponse(lead))
	}
	return responses, nil
}

// UpdateLeadStatus moves a lead through triage. Last writer wins.
func (s *leadService) UpdateLeadStatus(ctx context.Context, id string, status string) error {
	if errs := s.validator.ValidateStatus(status); len(errs) > 0 {
		return errs
	}
	return s.repo.UpdateLeadStatus(ctx, id, domain.Status(status))
}

func toLeadResponse(lead *domain.Lead) dto.LeadResponse {
	return dto.LeadResponse{
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

func adminLeadEmailHTML(lead *domain.Lead) string {
	return fmt.Sprintf(`
        <p><strong>Cliente:</strong> %s (%s)</p>
        <p><strong>Contacto:</strong> %s | %s</p>
        <p><strong>Interés:</strong> %s (%s)</p>
        <p><strong>Notas:</strong> %s</p>`,
		html.EscapeString(lead.ClientName),
		html.EscapeString(lead.CompanyName),
		html.EscapeString(lead.Whatsapp),
		html.EscapeString(lead.Email),
		html.EscapeString(lead.ServiceType),
		html.EscapeString(lead.Plan),
		html.EscapeString(lead.Notes),
	)
}

func clientLeadEmailHTML(lead *domain.Lead) string {
	return fmt.Sprintf(`
        <h1>Hola %s,</h1>
        <p>Hemos recibido tu solicitud para <strong>%s</strong>.</p>
        <p>Un ingeniero te contactará en breve.</p>`,
		html.EscapeString(lead.ClientName),
		html.EscapeString(lead.ServiceType),
	)
}
