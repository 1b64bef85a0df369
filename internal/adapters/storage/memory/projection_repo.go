package memory

import (
	"context"
	"fmt"

	"shelter-admin/internal/domain/projection"
)

type projectionRepo struct {
	s *Store
}

func NewProjectionRepo(s *Store) projection.Repository {
	return &projectionRepo{s: s}
}

func (r *projectionRepo) Project(ctx context.Context, q projection.Query) ([][]any, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	records, err := r.s.table(q.Table)
	if err != nil {
		return nil, err
	}

	out := make([][]any, 0, len(records))
	for _, rec := range records {
		vals := make([]any, len(q.Columns))
		for i, c := range q.Columns {
			v, ok := rec[c]
			if !ok {
				return nil, fmt.Errorf("memory: column %s.%s not stored", q.Table, c)
			}
			vals[i] = v
		}
		out = append(out, vals)
	}
	return out, nil
}

// table vuelca una tabla como registros columna -> valor con los nombres del catálogo.
func (s *Store) table(name string) ([]map[string]any, error) {
	var out []map[string]any
	switch name {
	case "AnimalAdmits":
		for _, a := range s.animals {
			out = append(out, map[string]any{"animalID": a.ID, "animalName": a.Name, "age": a.Age, "breed": a.Breed, "branchID": a.BranchID})
		}
	case "AnimalInfo":
		for _, b := range s.breeds {
			out = append(out, map[string]any{"breed": b.Breed, "species": b.Species})
		}
	case "Vaccination":
		for _, v := range s.vaccinations {
			out = append(out, map[string]any{"animalID": v.AnimalID, "vaccineType": v.Type, "vaccinationDate": v.Date})
		}
	case "Applies":
		for _, a := range s.applies {
			out = append(out, map[string]any{
				"branchID":          a.BranchID,
				"adopterID":         a.AdopterID,
				"animalID":          a.AnimalID,
				"applicationStatus": string(a.Status),
				"applicationDate":   a.Date,
			})
		}
	case "Adopter":
		for _, a := range s.adopters {
			out = append(out, map[string]any{"adopterID": a.AdopterID, "adopterName": a.Name, "email": a.Email, "phoneNum": a.PhoneNum})
		}
	case "Donor":
		for _, d := range s.donors {
			out = append(out, map[string]any{"donorID": d.ID, "donorName": d.Name, "email": d.Email})
		}
	case "Donates":
		for _, d := range s.donations {
			out = append(out, map[string]any{"donorID": d.DonorID, "branchID": d.BranchID, "amount": d.Amount, "donationDate": d.Date})
		}
	case "Attends":
		for _, a := range s.attends {
			out = append(out, map[string]any{"donorID": a.DonorID, "eventID": a.EventID})
		}
	case "Shelter":
		for _, sh := range s.shelters {
			out = append(out, map[string]any{"branchID": sh.BranchID, "phoneNum": sh.PhoneNum, "shelterAddress": sh.Address})
		}
	case "Events":
		for _, e := range s.events {
			out = append(out, map[string]any{
				"eventID":       e.EventID,
				"title":         e.Title,
				"eventLocation": e.Location,
				"eventDate":     e.Date,
				"eventType":     e.Type,
			})
		}
	default:
		return nil, fmt.Errorf("memory: unknown table %q", name)
	}
	return out, nil
}
