package postgres

import (
	"context"

	"shelter-admin/internal/domain/projection"
)

type ProjectionRepo struct {
	db *DB
}

func NewProjectionRepo(db *DB) *ProjectionRepo {
	return &ProjectionRepo{db: db}
}

// Project confía en que q ya pasó por projection.Resolve: tabla y columnas son canónicas.
func (r *ProjectionRepo) Project(ctx context.Context, pq projection.Query) ([][]any, error) {
	query, args, err := toSQL(psql.Select(pq.Columns...).From(pq.Table))
	if err != nil {
		return nil, err
	}

	out := make([][]any, 0)
	err = r.db.WithConn(ctx, "projection.project", func(ctx context.Context, q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			vals, err := rows.Values()
			if err != nil {
				return err
			}
			out = append(out, vals)
		}
		return rows.Err()
	})
	return out, err
}
