package events

import "context"

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	// Filter recibe al menos una condición.
	Filter(ctx context.Context, conds []Condition) ([]Event, error)
}
