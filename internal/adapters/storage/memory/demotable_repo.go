package memory

import (
	"context"

	"shelter-admin/internal/domain/demotable"
	"shelter-admin/internal/platform/apperr"
)

type demoTableRepo struct {
	s *Store
}

func NewDemoTableRepo(s *Store) demotable.Repository {
	return &demoTableRepo{s: s}
}

var errNotInitiated = apperr.NotFound("demotable has not been initiated")

func (r *demoTableRepo) Fetch(ctx context.Context) ([]demotable.Row, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if !r.s.demoReady {
		return nil, errNotInitiated
	}
	out := make([]demotable.Row, len(r.s.demo))
	copy(out, r.s.demo)
	return out, nil
}

func (r *demoTableRepo) Initiate(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.demo = nil
	r.s.demoReady = true
	return nil
}

func (r *demoTableRepo) Insert(ctx context.Context, row demotable.Row) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.demoReady {
		return errNotInitiated
	}
	for _, existing := range r.s.demo {
		if existing.ID == row.ID {
			return apperr.Conflict("record already exists", nil)
		}
	}
	r.s.demo = append(r.s.demo, row)
	return nil
}

func (r *demoTableRepo) UpdateName(ctx context.Context, oldName, newName string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.demoReady {
		return errNotInitiated
	}
	n := 0
	for i := range r.s.demo {
		if r.s.demo[i].Name == oldName {
			r.s.demo[i].Name = newName
			n++
		}
	}
	if n == 0 {
		return apperr.NotFound("no row named " + oldName)
	}
	return nil
}

func (r *demoTableRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if !r.s.demoReady {
		return 0, errNotInitiated
	}
	return int64(len(r.s.demo)), nil
}
