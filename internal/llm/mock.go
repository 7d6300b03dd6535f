package llm

import (
	"context"
	"sync"
)

// MockCompleter is a scripted Completer for testing. It returns Responses
// in order, repeating the last one once the script runs out, and records
// every prompt it receives.
type MockCompleter struct {
	mu        sync.Mutex
	Responses []string
	Err       error // returned instead of a response when set
	Prompts   []string
	Calls     int
}

// Complete returns the next scripted response.
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	m.Calls++

	if m.Err != nil {
		return "", m.Err
	}

	if len(m.Responses) == 0 {
		return "", nil
	}

	idx := m.Calls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}

// LastPrompt returns the most recently received prompt, or "" if none.
func (m *MockCompleter) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}
