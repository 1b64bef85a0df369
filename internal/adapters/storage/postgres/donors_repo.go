package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"shelter-admin/internal/domain/donors"
)

type DonorsRepo struct {
	db *DB
}

func NewDonorsRepo(db *DB) *DonorsRepo {
	return &DonorsRepo{db: db}
}

// TopDonors: total por donante mayor que el promedio de los totales por donante.
func (r *DonorsRepo) TopDonors(ctx context.Context) ([]donors.TopDonor, error) {
	query, args, err := toSQL(psql.
		Select("d.donorID", "d.donorName", "SUM(dn.amount)::float8 AS totalDonated").
		From("Donor d").
		Join("Donates dn ON dn.donorID = d.donorID").
		GroupBy("d.donorID", "d.donorName").
		Having("SUM(dn.amount) > (SELECT AVG(t.total) FROM (SELECT SUM(amount) AS total FROM Donates GROUP BY donorID) t)").
		OrderBy("totalDonated DESC", "d.donorID"))
	if err != nil {
		return nil, err
	}

	var out []donors.TopDonor
	err = r.db.WithConn(ctx, "donors.top", func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &out, query, args...)
	})
	return out, err
}

// AttendingAllEvents es una división relacional: no existe evento al que el donante no haya asistido.
func (r *DonorsRepo) AttendingAllEvents(ctx context.Context) ([]donors.Donor, error) {
	query, args, err := toSQL(psql.
		Select("d.donorID", "d.donorName").
		From("Donor d").
		Where(`NOT EXISTS (
			SELECT 1 FROM Events e
			WHERE NOT EXISTS (
				SELECT 1 FROM Attends att WHERE att.donorID = d.donorID AND att.eventID = e.eventID
			)
		)`).
		OrderBy("d.donorID"))
	if err != nil {
		return nil, err
	}

	var out []donors.Donor
	err = r.db.WithConn(ctx, "donors.attend_all_events", func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &out, query, args...)
	})
	return out, err
}
