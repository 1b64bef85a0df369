package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgtype"

	"shelter-admin/internal/domain/animals"
)

type AnimalsRepo struct {
	db *DB
}

func NewAnimalsRepo(db *DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

// notAdopted excluye animales con alguna solicitud Accepted.
func notAdopted() squirrel.Sqlizer {
	return squirrel.Expr(
		"NOT EXISTS (SELECT 1 FROM Applies ap WHERE ap.animalID = a.animalID AND ap.applicationStatus = ?)",
		"Accepted",
	)
}

func (r *AnimalsRepo) ListAvailable(ctx context.Context) ([]animals.AvailableAnimal, error) {
	query, args, err := toSQL(psql.
		Select("a.animalID", "a.animalName", "a.breed", "a.branchID").
		From("AnimalAdmits a").
		Where(notAdopted()).
		OrderBy("a.animalID"))
	if err != nil {
		return nil, err
	}

	var out []animals.AvailableAnimal
	err = r.db.WithConn(ctx, "animals.list_available", func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &out, query, args...)
	})
	return out, err
}

// animalRow es una fila de AnimalAdmits unida a AnimalInfo; age admite NULL.
type animalRow struct {
	AnimalID int64       `db:"animalid"`
	Name     string      `db:"animalname"`
	Age      pgtype.Int4 `db:"age"`
	Species  string      `db:"species"`
	Breed    string      `db:"breed"`
	BranchID int64       `db:"branchid"`
}

func (r animalRow) toAnimal() animals.Animal {
	a := animals.Animal{
		AnimalID: r.AnimalID,
		Name:     r.Name,
		Species:  r.Species,
		Breed:    r.Breed,
		BranchID: r.BranchID,
	}
	if r.Age.Valid {
		age := int(r.Age.Int32)
		a.Age = &age
	}
	return a
}

func (r *AnimalsRepo) ListWithSpecies(ctx context.Context) ([]animals.Animal, error) {
	query, args, err := toSQL(psql.
		Select("a.animalID", "a.animalName", "a.age", "i.species", "a.breed", "a.branchID").
		From("AnimalAdmits a").
		Join("AnimalInfo i ON i.breed = a.breed").
		Where(notAdopted()).
		OrderBy("a.animalID"))
	if err != nil {
		return nil, err
	}

	var rows []animalRow
	err = r.db.WithConn(ctx, "animals.list_with_species", func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &rows, query, args...)
	})
	if err != nil {
		return nil, err
	}

	out := make([]animals.Animal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toAnimal())
	}
	return out, nil
}

func (r *AnimalsRepo) VaccinationCounts(ctx context.Context) ([]animals.VaccinationCount, error) {
	query, args, err := toSQL(psql.
		Select("a.animalID", "COUNT(v.animalID) AS vaccinationCount").
		From("AnimalAdmits a").
		Join("Vaccination v ON v.animalID = a.animalID").
		GroupBy("a.animalID").
		OrderBy("a.animalID"))
	if err != nil {
		return nil, err
	}

	var out []animals.VaccinationCount
	err = r.db.WithConn(ctx, "animals.vaccination_counts", func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &out, query, args...)
	})
	return out, err
}
