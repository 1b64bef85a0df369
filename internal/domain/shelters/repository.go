package shelters

import "context"

type Repository interface {
	List(ctx context.Context) ([]Shelter, error)
	// UpdateContact devuelve apperr.ErrNotFound si la sucursal no existe.
	UpdateContact(ctx context.Context, s Shelter) error
}
