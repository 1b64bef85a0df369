package projection

import "context"

type Repository interface {
	// Project devuelve los valores de cada fila en el orden de q.Columns,
	// en el orden nativo de la base.
	Project(ctx context.Context, q Query) ([][]any, error)
}
