package adopters

import "context"

type Repository interface {
	List(ctx context.Context) ([]Adopter, error)
	// Delete también elimina sus solicitudes (ON DELETE CASCADE en Applies).
	// Devuelve apperr.ErrNotFound si el adoptante no existe.
	Delete(ctx context.Context, adopterID int64) error
}
