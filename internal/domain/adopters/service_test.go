package adopters

import (
	"context"
	"errors"
	"testing"

	"shelter-admin/internal/platform/apperr"
)

type testRepo struct {
	byID  map[int64]Adopter
	calls int
}

func (r *testRepo) List(ctx context.Context) ([]Adopter, error) {
	r.calls++
	out := make([]Adopter, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, adopterID int64) error {
	r.calls++
	if _, ok := r.byID[adopterID]; !ok {
		return apperr.NotFound("adopter not found")
	}
	delete(r.byID, adopterID)
	return nil
}

func TestDelete_RemovesAdopter(t *testing.T) {
	repo := &testRepo{byID: map[int64]Adopter{7: {AdopterID: 7, Name: "Ana"}}}
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), DeleteInput{AdopterID: 7}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected adopter removed")
	}
}

func TestDelete_MissingIsNotFound(t *testing.T) {
	svc := NewService(&testRepo{byID: map[int64]Adopter{}})

	err := svc.Delete(context.Background(), DeleteInput{AdopterID: 99})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete_InvalidIDNeverReachesRepo(t *testing.T) {
	for _, id := range []int64{0, -3} {
		repo := &testRepo{byID: map[int64]Adopter{}}
		svc := NewService(repo)

		err := svc.Delete(context.Background(), DeleteInput{AdopterID: id})
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("id %d: expected validation error, got %v", id, err)
		}
		if repo.calls != 0 {
			t.Fatalf("id %d: expected no repo calls, got %d", id, repo.calls)
		}
	}
}
