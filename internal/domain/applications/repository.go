package applications

import "context"

type Repository interface {
	List(ctx context.Context) ([]Application, error)
	Submit(ctx context.Context, a Application) error
	// Withdraw y Update devuelven apperr.ErrNotFound si la clave no existe.
	Withdraw(ctx context.Context, k Key) error
	Update(ctx context.Context, a Application) error
}
