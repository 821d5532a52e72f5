package pullrequest

import (
	"context"
	"sync"
)

// MockGateway answers List from Values keyed by "owner/name", falling back to
// ListValue. It is safe for use from the goroutines of an async loop.
type MockGateway struct {
	ErrorValue error
	ListValue  []*Entity
	Values     map[string][]*Entity

	mu    sync.Mutex
	Calls []*ListOptions
}

func (m *MockGateway) List(ctx context.Context, o *ListOptions) ([]*Entity, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, o)
	m.mu.Unlock()

	if m.ErrorValue != nil {
		return nil, m.ErrorValue
	}
	if v, ok := m.Values[o.Owner+"/"+o.Name]; ok {
		return v, nil
	}

	return m.ListValue, nil
}

func (m *MockGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.Calls)
}
