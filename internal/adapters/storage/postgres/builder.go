package postgres

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// psql arma SQL con placeholders $n. Los identificadores salen siempre de constantes
// o de allow-lists; los valores van como parámetros.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func toSQL(b squirrel.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("building query: %w", err)
	}
	return query, args, nil
}
