package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"shelter-admin/internal/domain/demotable"
	"shelter-admin/internal/platform/apperr"
)

const (
	demoTable       = "DEMOTABLE"
	dropDemoTable   = "DROP TABLE DEMOTABLE"
	createDemoTable = "CREATE TABLE DEMOTABLE (id INTEGER PRIMARY KEY, name VARCHAR(20) NOT NULL)"
)

type DemoTableRepo struct {
	db *DB
}

func NewDemoTableRepo(db *DB) *DemoTableRepo {
	return &DemoTableRepo{db: db}
}

func (r *DemoTableRepo) Fetch(ctx context.Context) ([]demotable.Row, error) {
	query, args, err := toSQL(psql.Select("id", "name").From(demoTable).OrderBy("id"))
	if err != nil {
		return nil, err
	}

	var out []demotable.Row
	err = r.db.WithConn(ctx, "demotable.fetch", func(ctx context.Context, q Querier) error {
		return notInitiated(pgxscan.Select(ctx, q, &out, query, args...))
	})
	return out, err
}

// Initiate corre DROP y CREATE sobre la misma conexión. Solo se tolera que el DROP
// falle porque la tabla no existe.
func (r *DemoTableRepo) Initiate(ctx context.Context) error {
	return r.db.WithConn(ctx, "demotable.initiate", func(ctx context.Context, q Querier) error {
		if _, err := q.Exec(ctx, dropDemoTable); err != nil && !isUndefinedTable(err) {
			return err
		}
		_, err := q.Exec(ctx, createDemoTable)
		return err
	})
}

func (r *DemoTableRepo) Insert(ctx context.Context, row demotable.Row) error {
	query, args, err := toSQL(psql.Insert(demoTable).Columns("id", "name").Values(row.ID, row.Name))
	if err != nil {
		return err
	}

	return r.db.WithConn(ctx, "demotable.insert", func(ctx context.Context, q Querier) error {
		_, err := q.Exec(ctx, query, args...)
		return notInitiated(err)
	})
}

func (r *DemoTableRepo) UpdateName(ctx context.Context, oldName, newName string) error {
	query, args, err := toSQL(psql.Update(demoTable).Set("name", newName).Where(squirrel.Eq{"name": oldName}))
	if err != nil {
		return err
	}

	return r.db.WithConn(ctx, "demotable.update_name", func(ctx context.Context, q Querier) error {
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return notInitiated(err)
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("no row named " + oldName)
		}
		return nil
	})
}

func (r *DemoTableRepo) Count(ctx context.Context) (int64, error) {
	query, args, err := toSQL(psql.Select("COUNT(*)").From(demoTable))
	if err != nil {
		return 0, err
	}

	var n int64
	err = r.db.WithConn(ctx, "demotable.count", func(ctx context.Context, q Querier) error {
		return notInitiated(q.QueryRow(ctx, query, args...).Scan(&n))
	})
	return n, err
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable
}

func notInitiated(err error) error {
	if isUndefinedTable(err) {
		return apperr.Wrap(apperr.ErrNotFound, "demotable has not been initiated", err)
	}
	return err
}
