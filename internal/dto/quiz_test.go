package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValueAcceptsStringOrArray(t *testing.T) {
	var req QuizSubmissionRequest
	payload := `{
		"client_name": "Juan",
		"email": "juan@example.com",
		"answers": {
			"business_type": "comercio",
			"secondary_goals": ["leads", "reservas"]
		}
	}`

	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	set := req.AnswerSet()
	assert.Equal(t, []string{"comercio"}, set["business_type"])
	assert.Equal(t, []string{"leads", "reservas"}, set["secondary_goals"])
}

func TestAnswerValueRejectsOtherShapes(t *testing.T) {
	var v AnswerValue
	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"nested":"object"}`), &v))
}
