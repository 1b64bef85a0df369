package memory

import (
	"context"

	"shelter-admin/internal/domain/shelters"
	"shelter-admin/internal/platform/apperr"
)

type sheltersRepo struct {
	s *Store
}

func NewSheltersRepo(s *Store) shelters.Repository {
	return &sheltersRepo{s: s}
}

func (r *sheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]shelters.Shelter, len(r.s.shelters))
	copy(out, r.s.shelters)
	return out, nil
}

func (r *sheltersRepo) UpdateContact(ctx context.Context, sh shelters.Shelter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.shelters {
		if r.s.shelters[i].BranchID == sh.BranchID {
			r.s.shelters[i] = sh
			return nil
		}
	}
	return apperr.NotFound("shelter not found")
}
