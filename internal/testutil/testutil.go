// Package testutil provides fixtures and mocks shared by package tests.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/eldersense/eldersense/internal/store"
)

// TestContext returns a context with a deadline suitable for unit tests.
func TestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TestStore returns an in-memory store primed with the sample records.
func TestStore(t *testing.T) store.Store {
	t.Helper()
	s := store.NewMemoryStore(store.SeedRecords())
	t.Cleanup(func() { s.Close() })
	return s
}

// EmptyStore returns an in-memory store with no records.
func EmptyStore(t *testing.T) store.Store {
	t.Helper()
	s := store.NewMemoryStore(store.Records{})
	t.Cleanup(func() { s.Close() })
	return s
}

// MockProvider is a scripted completion provider. Responses are returned in
// order; when the script runs out, the last response repeats.
type MockProvider struct {
	mu        sync.Mutex
	responses []string
	index     int
	Err       error

	// Prompts records every prompt received, in order.
	Prompts []string
}

// NewMockProvider creates a provider that replays the given responses.
func NewMockProvider(responses ...string) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock provider has no responses")
	}

	resp := m.responses[m.index]
	if m.index < len(m.responses)-1 {
		m.index++
	}
	return resp, nil
}

func (m *MockProvider) Name() string { return "mock" }

// CallCount returns how many prompts the provider has served.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

// NewOllamaMockServer starts an httptest server that speaks the local
// completion protocol, returning the given responses in order.
func NewOllamaMockServer(t *testing.T, responses ...string) *httptest.Server {
	t.Helper()

	var mu sync.Mutex
	index := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		mu.Lock()
		resp := ""
		if len(responses) > 0 {
			resp = responses[index]
			if index < len(responses)-1 {
				index++
			}
		}
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"response": resp})
	}))

	t.Cleanup(srv.Close)
	return srv
}
