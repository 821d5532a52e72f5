package pullrequest

import "context"

// Gateway lists the pull requests of a single repository, in server order.
type Gateway interface {
	List(ctx context.Context, o *ListOptions) ([]*Entity, error)
}

type ListOptions struct {
	Owner string
	Name  string
}
