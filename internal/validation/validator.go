package validation

import (
	"regexp"
	"strings"

	"fireforge/internal/domain"
	"fireforge/internal/dto"
	"fireforge/internal/quiz"
)

// Validator provides request validation functionality. It is the only gate
// before the submission pipelines: anything that passes here is allowed to
// reach the persistence step.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidateLeadRequest checks the contact-form payload: required fields,
// email format and minimum lengths, mirroring the public form's own schema.
func (v *Validator) ValidateLeadRequest(req *dto.LeadRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.ClientName) == "" {
		errors = append(errors, domain.NewMissingFieldError("client_name"))
	} else if len(strings.TrimSpace(req.ClientName)) < 2 {
		errors = append(errors, domain.NewTooShortError("client_name", 2))
	}

	if strings.TrimSpace(req.CompanyName) == "" {
		errors = append(errors, domain.NewMissingFieldError("company_name"))
	} else if len(strings.TrimSpace(req.CompanyName)) < 2 {
		errors = append(errors, domain.NewTooShortError("company_name", 2))
	}

	errors = append(errors, v.validateEmail(req.Email)...)

	if strings.TrimSpace(req.Whatsapp) == "" {
		errors = append(errors, domain.NewMissingFieldError("whatsapp"))
	} else if len(strings.TrimSpace(req.Whatsapp)) < 8 {
		errors = append(errors, domain.NewTooShortError("whatsapp", 8))
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		errors = append(errors, domain.NewMissingFieldError("service_type"))
	}

	return errors
}

// ValidateQuizSubmission checks respondent details and enforces that every
// required catalog question carries a non-empty answer. The scoring engine
// itself tolerates unknown ids; requiredness is enforced here, at the gate.
func (v *Validator) ValidateQuizSubmission(req *dto.QuizSubmissionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.ClientName) == "" {
		errors = append(errors, domain.NewMissingFieldError("client_name"))
	} else if len(strings.TrimSpace(req.ClientName)) < 2 {
		errors = append(errors, domain.NewTooShortError("client_name", 2))
	}

	errors = append(errors, v.validateEmail(req.Email)...)

	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
		return errors
	}

	for _, question := range quiz.Questions {
		if !question.Required {
			continue
		}
		values, ok := req.Answers[question.ID]
		if !ok || len(values) == 0 {
			errors = append(errors, domain.NewMissingFieldError("answers."+question.ID))
			continue
		}
		empty := true
		for _, value := range values {
			if strings.TrimSpace(value) != "" {
				empty = false
				break
			}
		}
		if empty {
			errors = append(errors, domain.NewMissingFieldError("answers."+question.ID))
		}
	}

	return errors
}

// ValidateBlogPostRequest checks an admin-authored article.
func (v *Validator) ValidateBlogPostRequest(req *dto.BlogPostRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if strings.TrimSpace(req.Slug) == "" {
		errors = append(errors, domain.NewMissingFieldError("slug"))
	} else if !slugPattern.MatchString(req.Slug) {
		errors = append(errors, domain.NewInvalidFormatError("slug", req.Slug))
	}
	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	}

	return errors
}

// ValidateClientRequest checks a portfolio entry.
func (v *Validator) ValidateClientRequest(req *dto.ClientRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	}
	if strings.TrimSpace(req.Category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}
	if req.Order < 0 {
		errors = append(errors, domain.NewOutOfRangeError("order", req.Order, 0, 9999))
	}

	return errors
}

// ValidateStatus checks a triage status transition target.
func (v *Validator) ValidateStatus(status string) domain.ValidationErrors {
	if !domain.Status(status).IsValid() {
		return domain.ValidationErrors{domain.NewInvalidFormatError("status", status)}
	}
	return nil
}

func (v *Validator) validateEmail(email string) domain.ValidationErrors {
	if strings.TrimSpace(email) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("email")}
	}
	if !emailPattern.MatchString(email) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("email", email)}
	}
	return nil
}
