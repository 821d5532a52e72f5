package repository

import "context"

// MockGateway records calls and answers from its fields. AddFunc, when set,
// takes precedence over AddValue.
type MockGateway struct {
	ErrorValue  error
	ListValue   []*Entity
	AddValue    *Entity
	AddFunc     func(o *AddOptions) (*Entity, error)
	DeleteFunc  func(o *DeleteOptions) error
	ListCalls   int
	AddCalls    []*AddOptions
	DeleteCalls []*DeleteOptions
	GetCalls    []*GetOptions
}

func (m *MockGateway) List(ctx context.Context) ([]*Entity, error) {
	m.ListCalls++
	if m.ErrorValue != nil {
		return nil, m.ErrorValue
	}

	return m.ListValue, nil
}

func (m *MockGateway) Add(ctx context.Context, o *AddOptions) (*Entity, error) {
	m.AddCalls = append(m.AddCalls, o)
	if m.AddFunc != nil {
		return m.AddFunc(o)
	}
	if m.ErrorValue != nil {
		return nil, m.ErrorValue
	}

	return m.AddValue, nil
}

func (m *MockGateway) Delete(ctx context.Context, o *DeleteOptions) error {
	m.DeleteCalls = append(m.DeleteCalls, o)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(o)
	}

	return m.ErrorValue
}

func (m *MockGateway) Get(ctx context.Context, o *GetOptions) (*Entity, error) {
	m.GetCalls = append(m.GetCalls, o)
	if m.ErrorValue != nil {
		return nil, m.ErrorValue
	}

	return &Entity{ID: o.ID}, nil
}
