package domain

import "time"

// Status is the triage state an administrator moves a submission through.
// Records are created as StatusNuevo and never deleted by the pipeline.
type Status string

const (
	StatusNuevo      Status = "nuevo"
	StatusContactado Status = "contactado"
	StatusConvertido Status = "convertido"
)

// IsValid reports whether s is one of the known triage states.
func (s Status) IsValid() bool {
	switch s {
	case StatusNuevo, StatusContactado, StatusConvertido:
		return true
	}
	return false
}

// Lead is a prospective customer's contact-form submission.
type Lead struct {
	ID            string
	ClientName    string
	CompanyName   string
	Email         string
	Whatsapp      string
	ServiceType   string
	Plan          string
	Notes         string
	CorrelationID string
	Status        Status
	CreatedAt     time.Time
}

// NewLead builds a lead tagged with fresh identifiers. Every submission gets
// its own record: resubmitting identical data creates a second lead.
func NewLead(id, correlationID, clientName, companyName, email, whatsapp, serviceType, plan, notes string) *Lead {
	if plan == "" {
		plan = "N/A"
	}
	if notes == "" {
		notes = "Sin notas"
	}
	return &Lead{
		ID:            id,
		ClientName:    clientName,
		CompanyName:   companyName,
		Email:         email,
		Whatsapp:      whatsapp,
		ServiceType:   serviceType,
		Plan:          plan,
		Notes:         notes,
		CorrelationID: correlationID,
		Status:        StatusNuevo,
		CreatedAt:     time.Now(),
	}
}
