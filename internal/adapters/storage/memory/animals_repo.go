package memory

import (
	"context"
	"sort"

	"shelter-admin/internal/domain/animals"
)

type animalsRepo struct {
	s *Store
}

func NewAnimalsRepo(s *Store) animals.Repository {
	return &animalsRepo{s: s}
}

func (r *animalsRepo) ListAvailable(ctx context.Context) ([]animals.AvailableAnimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]animals.AvailableAnimal, 0, len(r.s.animals))
	for _, a := range r.s.animals {
		if r.s.adopted(a.ID) {
			continue
		}
		out = append(out, animals.AvailableAnimal{AnimalID: a.ID, Name: a.Name, Breed: a.Breed, BranchID: a.BranchID})
	}
	return out, nil
}

func (r *animalsRepo) ListWithSpecies(ctx context.Context) ([]animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.s.animals))
	for _, a := range r.s.animals {
		if r.s.adopted(a.ID) {
			continue
		}
		for _, b := range r.s.breeds {
			if b.Breed != a.Breed {
				continue
			}
			age := a.Age
			out = append(out, animals.Animal{
				AnimalID: a.ID,
				Name:     a.Name,
				Age:      &age,
				Species:  b.Species,
				Breed:    a.Breed,
				BranchID: a.BranchID,
			})
		}
	}
	return out, nil
}

func (r *animalsRepo) VaccinationCounts(ctx context.Context) ([]animals.VaccinationCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[int64]int64{}
	for _, v := range r.s.vaccinations {
		if r.s.hasAnimal(v.AnimalID) {
			counts[v.AnimalID]++
		}
	}

	out := make([]animals.VaccinationCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, animals.VaccinationCount{AnimalID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AnimalID < out[j].AnimalID })
	return out, nil
}
