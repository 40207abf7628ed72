package llm

import "time"

func goalSchema() *Schema {
	return &Schema{
		Name: "test-goal",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"goal":    map[string]any{"type": "string", "minLength": 1},
				"ability": map[string]any{"type": "string", "enum": []any{"perception", "exec", "attention", "memory"}},
			},
			"required":             []any{"goal"},
			"additionalProperties": false,
		},
	}
}

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}
