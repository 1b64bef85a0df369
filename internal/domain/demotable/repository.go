package demotable

import "context"

type Repository interface {
	Fetch(ctx context.Context) ([]Row, error)
	// Initiate borra la tabla si existe y la vuelve a crear vacía.
	Initiate(ctx context.Context) error
	Insert(ctx context.Context, row Row) error
	// UpdateName devuelve apperr.ErrNotFound si ninguna fila tiene oldName.
	UpdateName(ctx context.Context, oldName, newName string) error
	Count(ctx context.Context) (int64, error)
}
