package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one queued answer for MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider answers from a FIFO queue and records every request.
// When the queue is empty and Synthesize is set, it fabricates a
// schema-shaped object instead of failing.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request

	Synthesize bool
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var next MockResponse
	switch {
	case len(m.responses) > 0:
		next = m.responses[0]
		m.responses = m.responses[1:]
	case m.Synthesize:
		next = MockResponse{Content: synthesize(req.Schema)}
	default:
		return nil, &ErrProviderUnavailable{}
	}
	if next.Err != nil {
		return nil, next.Err
	}

	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse queues another answer.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// synthesize fills every string property of an object schema with a
// placeholder naming the property.
func synthesize(schema *Schema) json.RawMessage {
	if schema == nil {
		return json.RawMessage(`"mock"`)
	}
	out := map[string]any{}
	props, _ := schema.Definition["properties"].(map[string]any)
	for name, v := range props {
		def, _ := v.(map[string]any)
		switch def["type"] {
		case "string":
			out[name] = "mock " + name
		case "array":
			out[name] = []any{}
		case "number", "integer":
			out[name] = 0
		case "boolean":
			out[name] = false
		}
	}
	raw, _ := json.Marshal(out)
	return raw
}
