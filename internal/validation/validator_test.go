package validation

import (
	"testing"

	"fireforge/internal/domain"
	"fireforge/internal/dto"
	"fireforge/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLead() *dto.LeadRequest {
	return &dto.LeadRequest{
		ClientName:  "María Pérez",
		CompanyName: "Colmado El Sol",
		Email:       "maria@example.com",
		Whatsapp:    "18095551234",
		ServiceType: "landing",
	}
}

func TestValidateLeadRequest_Valid(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateLeadRequest(validLead()))
}

func TestValidateLeadRequest_CollectsEveryFailure(t *testing.T) {
	v := NewValidator()
	errs := v.ValidateLeadRequest(&dto.LeadRequest{})

	// One failure per missing field, not just the first one found.
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["client_name"])
	assert.True(t, fields["company_name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["whatsapp"])
	assert.True(t, fields["service_type"])
}

func TestValidateLeadRequest_EmailFormat(t *testing.T) {
	v := NewValidator()

	req := validLead()
	req.Email = "no-es-un-email"
	errs := v.ValidateLeadRequest(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateLeadRequest_ShortWhatsapp(t *testing.T) {
	v := NewValidator()

	req := validLead()
	req.Whatsapp = "123"
	errs := v.ValidateLeadRequest(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "whatsapp", errs[0].Field)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
}

func TestValidateQuizSubmission_RequiresEveryRequiredQuestion(t *testing.T) {
	v := NewValidator()

	answers := map[string]dto.AnswerValue{}
	for _, q := range quiz.Questions {
		if q.Required {
			answers[q.ID] = dto.AnswerValue{q.Options[0].Value}
		}
	}

	req := &dto.QuizSubmissionRequest{
		ClientName: "Juan",
		Email:      "juan@example.com",
		Answers:    answers,
	}
	assert.Empty(t, v.ValidateQuizSubmission(req))

	delete(req.Answers, "main_goal")
	errs := v.ValidateQuizSubmission(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "answers.main_goal", errs[0].Field)
}

func TestValidateQuizSubmission_BlankAnswerCountsAsMissing(t *testing.T) {
	v := NewValidator()

	answers := map[string]dto.AnswerValue{}
	for _, q := range quiz.Questions {
		if q.Required {
			answers[q.ID] = dto.AnswerValue{q.Options[0].Value}
		}
	}
	answers["budget"] = dto.AnswerValue{"   "}

	errs := v.ValidateQuizSubmission(&dto.QuizSubmissionRequest{
		ClientName: "Juan",
		Email:      "juan@example.com",
		Answers:    answers,
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "answers.budget", errs[0].Field)
}

func TestValidateBlogPostRequest_SlugFormat(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateBlogPostRequest(&dto.BlogPostRequest{
		Title:   "Título",
		Slug:    "Mayúsculas Y Espacios",
		Content: "contenido",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "slug", errs[0].Field)

	assert.Empty(t, v.ValidateBlogPostRequest(&dto.BlogPostRequest{
		Title:   "Título",
		Slug:    "un-slug-valido-123",
		Content: "contenido",
	}))
}

func TestValidateStatus(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateStatus("nuevo"))
	assert.Empty(t, v.ValidateStatus("contactado"))
	assert.Empty(t, v.ValidateStatus("convertido"))
	assert.NotEmpty(t, v.ValidateStatus("archivado"))
	assert.NotEmpty(t, v.ValidateStatus(""))
}
