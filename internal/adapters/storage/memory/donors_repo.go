package memory

import (
	"context"
	"sort"

	"shelter-admin/internal/domain/donors"
)

type donorsRepo struct {
	s *Store
}

func NewDonorsRepo(s *Store) donors.Repository {
	return &donorsRepo{s: s}
}

func (r *donorsRepo) TopDonors(ctx context.Context) ([]donors.TopDonor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	totals := map[int64]float64{}
	for _, d := range r.s.donations {
		totals[d.DonorID] += d.Amount
	}
	if len(totals) == 0 {
		return []donors.TopDonor{}, nil
	}

	var sum float64
	for _, t := range totals {
		sum += t
	}
	avg := sum / float64(len(totals))

	out := make([]donors.TopDonor, 0)
	for _, d := range r.s.donors {
		if t, ok := totals[d.ID]; ok && t > avg {
			out = append(out, donors.TopDonor{DonorID: d.ID, Name: d.Name, TotalDonated: t})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalDonated > out[j].TotalDonated })
	return out, nil
}

func (r *donorsRepo) AttendingAllEvents(ctx context.Context) ([]donors.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	attended := map[int64]map[int64]bool{}
	for _, a := range r.s.attends {
		if attended[a.DonorID] == nil {
			attended[a.DonorID] = map[int64]bool{}
		}
		attended[a.DonorID][a.EventID] = true
	}

	out := make([]donors.Donor, 0)
	for _, d := range r.s.donors {
		all := true
		for _, e := range r.s.events {
			if !attended[d.ID][e.EventID] {
				all = false
				break
			}
		}
		if all {
			out = append(out, donors.Donor{DonorID: d.ID, Name: d.Name})
		}
	}
	return out, nil
}
