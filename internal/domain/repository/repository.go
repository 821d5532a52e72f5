package repository

import "context"

// Gateway is the request/response boundary of the repository collection
// endpoints. Implementations keep no local state.
type Gateway interface {
	List(ctx context.Context) ([]*Entity, error)
	Add(ctx context.Context, o *AddOptions) (*Entity, error)
	Delete(ctx context.Context, o *DeleteOptions) error
	Get(ctx context.Context, o *GetOptions) (*Entity, error)
}

type AddOptions struct {
	Owner string
	Name  string
}

type DeleteOptions struct {
	ID EntityID
}

type GetOptions struct {
	ID EntityID
}
