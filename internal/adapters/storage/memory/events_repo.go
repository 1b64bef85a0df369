package memory

import (
	"context"
	"sort"

	"shelter-admin/internal/domain/events"
	"shelter-admin/internal/platform/validation"
)

type eventsRepo struct {
	s *Store
}

func NewEventsRepo(s *Store) events.Repository {
	return &eventsRepo{s: s}
}

func (r *eventsRepo) List(ctx context.Context) ([]events.Event, error) {
	return r.Filter(ctx, nil)
}

// Filter evalúa con la precedencia de SQL: AND liga más fuerte que OR, así que
// las condiciones se agrupan en tramos separados por OR.
func (r *eventsRepo) Filter(ctx context.Context, conds []events.Condition) ([]events.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	groups := orGroups(conds)
	out := make([]events.Event, 0)
	for _, e := range r.s.events {
		if len(groups) == 0 || anyGroupMatches(e, groups) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].EventID < out[j].EventID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func orGroups(conds []events.Condition) [][]events.Condition {
	var groups [][]events.Condition
	for i, c := range conds {
		if i == 0 || c.Connective == events.Or {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], c)
	}
	return groups
}

func anyGroupMatches(e events.Event, groups [][]events.Condition) bool {
	for _, g := range groups {
		ok := true
		for _, c := range g {
			if !matches(e, c) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func matches(e events.Event, c events.Condition) bool {
	switch c.Attribute {
	case events.AttrTitle:
		return e.Title == c.Value
	case events.AttrLocation:
		return e.Location == c.Value
	case events.AttrType:
		return e.Type == c.Value
	case events.AttrDate:
		return e.Date.Format(validation.DateLayout) == c.Value
	default:
		return false
	}
}
