package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"goal":"强化记忆力能力","ability":"memory"}`, false},
		{"optional omitted", `{"goal":"强化注意力能力"}`, false},
		{"missing required", `{"ability":"memory"}`, true},
		{"empty string", `{"goal":""}`, true},
		{"unknown enum", `{"goal":"x","ability":"speed"}`, true},
		{"extra field", `{"goal":"x","note":"y"}`, true},
		{"wrong type", `{"goal":3}`, true},
		{"malformed", `{goal}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(goalSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var invalid *ErrInvalidResponse
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsText(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`free text`)))
}

func TestValidateResponse_GoLiteralSchema(t *testing.T) {
	schema := &Schema{
		Name: "test-narrative-literal",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"training_plan_intro": map[string]any{"type": "string"},
				"score_prediction":    map[string]any{"type": "string"},
			},
			"required": []string{"training_plan_intro", "score_prediction"},
		},
	}
	assert.NoError(t, validateResponse(schema, json.RawMessage(`{"training_plan_intro":"a","score_prediction":"b"}`)))
	assert.Error(t, validateResponse(schema, json.RawMessage(`{"training_plan_intro":"a"}`)))
}

func TestValidateResponse_ErrorNamesSchema(t *testing.T) {
	err := validateResponse(goalSchema(), json.RawMessage(`{"ability":"memory"}`))
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "test-goal", invalid.Schema)
	assert.Contains(t, err.Error(), "test-goal output rejected")

	err = validateResponse(goalSchema(), json.RawMessage(`["a"]`))
	assert.ErrorContains(t, err, "expected a JSON object")
}
