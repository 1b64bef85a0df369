package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"shelter-admin/internal/domain/applications"
	"shelter-admin/internal/platform/apperr"
)

type ApplicationsRepo struct {
	db *DB
}

func NewApplicationsRepo(db *DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

type applicationRow struct {
	BranchID  int64     `db:"branchid"`
	AdopterID int64     `db:"adopterid"`
	AnimalID  int64     `db:"animalid"`
	Status    string    `db:"applicationstatus"`
	Date      time.Time `db:"applicationdate"`
}

func keyPred(k applications.Key) squirrel.And {
	return squirrel.And{
		squirrel.Eq{"branchID": k.BranchID},
		squirrel.Eq{"adopterID": k.AdopterID},
		squirrel.Eq{"animalID": k.AnimalID},
	}
}

func (r *ApplicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	query, args, err := toSQL(psql.
		Select("branchID", "adopterID", "animalID", "applicationStatus", "applicationDate").
		From("Applies").
		OrderBy("applicationDate", "branchID", "adopterID", "animalID"))
	if err != nil {
		return nil, err
	}

	var rows []applicationRow
	err = r.db.WithConn(ctx, "applications.list", func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &rows, query, args...)
	})
	if err != nil {
		return nil, err
	}

	out := make([]applications.Application, 0, len(rows))
	for _, row := range rows {
		out = append(out, applications.Application{
			Key:    applications.Key{BranchID: row.BranchID, AdopterID: row.AdopterID, AnimalID: row.AnimalID},
			Status: applications.Status(row.Status),
			Date:   row.Date,
		})
	}
	return out, nil
}

func (r *ApplicationsRepo) Submit(ctx context.Context, a applications.Application) error {
	query, args, err := toSQL(psql.
		Insert("Applies").
		Columns("branchID", "adopterID", "animalID", "applicationStatus", "applicationDate").
		Values(a.BranchID, a.AdopterID, a.AnimalID, string(a.Status), a.Date))
	if err != nil {
		return err
	}

	return r.db.WithConn(ctx, "applications.submit", func(ctx context.Context, q Querier) error {
		_, err := q.Exec(ctx, query, args...)
		return err
	})
}

func (r *ApplicationsRepo) Withdraw(ctx context.Context, k applications.Key) error {
	query, args, err := toSQL(psql.Delete("Applies").Where(keyPred(k)))
	if err != nil {
		return err
	}

	return r.db.WithConn(ctx, "applications.withdraw", func(ctx context.Context, q Querier) error {
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("application not found")
		}
		return nil
	})
}

func (r *ApplicationsRepo) Update(ctx context.Context, a applications.Application) error {
	query, args, err := toSQL(psql.
		Update("Applies").
		Set("applicationStatus", string(a.Status)).
		Set("applicationDate", a.Date).
		Where(keyPred(a.Key)))
	if err != nil {
		return err
	}

	return r.db.WithConn(ctx, "applications.update", func(ctx context.Context, q Querier) error {
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("application not found")
		}
		return nil
	})
}
