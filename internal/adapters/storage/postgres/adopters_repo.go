package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgtype"

	"shelter-admin/internal/domain/adopters"
	"shelter-admin/internal/platform/apperr"
)

type AdoptersRepo struct {
	db *DB
}

func NewAdoptersRepo(db *DB) *AdoptersRepo {
	return &AdoptersRepo{db: db}
}

// adopterRow refleja Adopter; email y phoneNum admiten NULL.
type adopterRow struct {
	AdopterID int64       `db:"adopterid"`
	Name      string      `db:"adoptername"`
	Email     pgtype.Text `db:"email"`
	PhoneNum  pgtype.Text `db:"phonenum"`
}

func (r adopterRow) toAdopter() adopters.Adopter {
	return adopters.Adopter{
		AdopterID: r.AdopterID,
		Name:      r.Name,
		Email:     r.Email.String,
		PhoneNum:  r.PhoneNum.String,
	}
}

func (r *AdoptersRepo) List(ctx context.Context) ([]adopters.Adopter, error) {
	query, args, err := toSQL(psql.
		Select("adopterID", "adopterName", "email", "phoneNum").
		From("Adopter").
		OrderBy("adopterID"))
	if err != nil {
		return nil, err
	}

	var rows []adopterRow
	err = r.db.WithConn(ctx, "adopters.list", func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &rows, query, args...)
	})
	if err != nil {
		return nil, err
	}

	out := make([]adopters.Adopter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toAdopter())
	}
	return out, nil
}

func (r *AdoptersRepo) Delete(ctx context.Context, adopterID int64) error {
	query, args, err := toSQL(psql.Delete("Adopter").Where(squirrel.Eq{"adopterID": adopterID}))
	if err != nil {
		return err
	}

	return r.db.WithConn(ctx, "adopters.delete", func(ctx context.Context, q Querier) error {
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("adopter not found")
		}
		return nil
	})
}
