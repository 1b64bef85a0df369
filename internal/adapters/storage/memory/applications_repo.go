package memory

import (
	"context"
	"sort"

	"shelter-admin/internal/domain/applications"
	"shelter-admin/internal/platform/apperr"
)

type applicationsRepo struct {
	s *Store
}

func NewApplicationsRepo(s *Store) applications.Repository {
	return &applicationsRepo{s: s}
}

func (r *applicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]applications.Application, len(r.s.applies))
	copy(out, r.s.applies)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *applicationsRepo) Submit(ctx context.Context, a applications.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.find(a.Key) >= 0 {
		return apperr.Conflict("record already exists", nil)
	}
	if !r.s.hasShelter(a.BranchID) || !r.s.hasAdopter(a.AdopterID) || !r.s.hasAnimal(a.AnimalID) {
		return apperr.Conflict("referenced record is missing or still in use", nil)
	}
	r.s.applies = append(r.s.applies, a)
	return nil
}

func (r *applicationsRepo) Withdraw(ctx context.Context, k applications.Key) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.find(k)
	if i < 0 {
		return apperr.NotFound("application not found")
	}
	r.s.applies = append(r.s.applies[:i], r.s.applies[i+1:]...)
	return nil
}

func (r *applicationsRepo) Update(ctx context.Context, a applications.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.find(a.Key)
	if i < 0 {
		return apperr.NotFound("application not found")
	}
	r.s.applies[i] = a
	return nil
}

func (s *Store) find(k applications.Key) int {
	for i, a := range s.applies {
		if a.Key == k {
			return i
		}
	}
	return -1
}
