package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"shelter-admin/internal/domain/shelters"
	"shelter-admin/internal/platform/apperr"
)

type SheltersRepo struct {
	db *DB
}

func NewSheltersRepo(db *DB) *SheltersRepo {
	return &SheltersRepo{db: db}
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	query, args, err := toSQL(psql.
		Select("branchID", "phoneNum", "shelterAddress").
		From("Shelter").
		OrderBy("branchID"))
	if err != nil {
		return nil, err
	}

	var out []shelters.Shelter
	err = r.db.WithConn(ctx, "shelters.list", func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &out, query, args...)
	})
	return out, err
}

func (r *SheltersRepo) UpdateContact(ctx context.Context, s shelters.Shelter) error {
	query, args, err := toSQL(psql.
		Update("Shelter").
		Set("phoneNum", s.PhoneNum).
		Set("shelterAddress", s.Address).
		Where(squirrel.Eq{"branchID": s.BranchID}))
	if err != nil {
		return err
	}

	return r.db.WithConn(ctx, "shelters.update_contact", func(ctx context.Context, q Querier) error {
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("shelter not found")
		}
		return nil
	})
}
