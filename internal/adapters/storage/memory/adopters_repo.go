package memory

import (
	"context"

	"shelter-admin/internal/domain/adopters"
	"shelter-admin/internal/domain/applications"
	"shelter-admin/internal/platform/apperr"
)

type adoptersRepo struct {
	s *Store
}

func NewAdoptersRepo(s *Store) adopters.Repository {
	return &adoptersRepo{s: s}
}

func (r *adoptersRepo) List(ctx context.Context) ([]adopters.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adopters.Adopter, len(r.s.adopters))
	copy(out, r.s.adopters)
	return out, nil
}

// Delete replica el ON DELETE CASCADE de Applies.
func (r *adoptersRepo) Delete(ctx context.Context, adopterID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := -1
	for i, a := range r.s.adopters {
		if a.AdopterID == adopterID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NotFound("adopter not found")
	}
	r.s.adopters = append(r.s.adopters[:idx], r.s.adopters[idx+1:]...)

	kept := r.s.applies[:0]
	for _, a := range r.s.applies {
		if a.AdopterID != adopterID {
			kept = append(kept, a)
		}
	}
	r.s.applies = append([]applications.Application(nil), kept...)
	return nil
}
