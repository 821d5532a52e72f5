package repository

import (
	"fmt"
	"time"
)

type EntityID string

// Entity is a tracked repository as stored by the API server.
type Entity struct {
	ID        EntityID
	Owner     string
	Name      string
	CreatedAt *time.Time
}

func (e *Entity) FullName() string {
	return fmt.Sprintf("%s/%s", e.Owner, e.Name)
}
