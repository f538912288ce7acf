package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockProvider is a test double that replays canned responses in FIFO
// order. Enqueue either raw content or an error per expected call.
type MockProvider struct {
	mu       sync.Mutex
	model    string
	queue    []mockResult
	requests []Request
}

type mockResult struct {
	content json.RawMessage
	err     error
}

// NewMockProvider creates a mock reporting the given model ID.
func NewMockProvider(model string) *MockProvider {
	return &MockProvider{model: model}
}

// Enqueue adds a successful canned response.
func (m *MockProvider) Enqueue(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockResult{content: json.RawMessage(content)})
}

// EnqueueError adds a canned failure.
func (m *MockProvider) EnqueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockResult{err: err})
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	if len(m.queue) == 0 {
		return nil, fmt.Errorf("mock provider %s: no canned responses left", m.model)
	}

	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.err != nil {
		return nil, next.err
	}

	return &Response{
		Content:    next.content,
		Model:      m.model,
		StopReason: "end",
		Usage:      Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	}, nil
}

func (m *MockProvider) ModelID() string {
	return m.model
}

// Requests returns a copy of every request seen so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// CallCount returns how many times Generate has been invoked.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
