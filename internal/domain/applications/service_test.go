package applications

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelter-admin/internal/platform/apperr"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byKey map[Key]Application
	calls int
}

func newTestRepo() *testRepo {
	return &testRepo{byKey: map[Key]Application{}}
}

func (r *testRepo) List(ctx context.Context) ([]Application, error) {
	r.calls++
	out := make([]Application, 0, len(r.byKey))
	for _, a := range r.byKey {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Submit(ctx context.Context, a Application) error {
	r.calls++
	if _, ok := r.byKey[a.Key]; ok {
		return apperr.Conflict("record already exists", nil)
	}
	r.byKey[a.Key] = a
	return nil
}

func (r *testRepo) Withdraw(ctx context.Context, k Key) error {
	r.calls++
	if _, ok := r.byKey[k]; !ok {
		return apperr.NotFound("application not found")
	}
	delete(r.byKey, k)
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Application) error {
	r.calls++
	if _, ok := r.byKey[a.Key]; !ok {
		return apperr.NotFound("application not found")
	}
	r.byKey[a.Key] = a
	return nil
}

func validInput() SubmitInput {
	return SubmitInput{
		KeyInput: KeyInput{BranchID: 1, AdopterID: 2, AnimalID: 3},
		Status:   "pending",
		Date:     "2024-01-15",
	}
}

// -------------------------
// Tests
// -------------------------

func TestSubmit_NormalizesStatusAndParsesDate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	in := validInput()
	in.Status = "ACCEPTED"

	a, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.Status != StatusAccepted {
		t.Fatalf("expected status %q, got %q", StatusAccepted, a.Status)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !a.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, a.Date)
	}
	if _, ok := repo.byKey[Key{BranchID: 1, AdopterID: 2, AnimalID: 3}]; !ok {
		t.Fatalf("expected application stored")
	}
}

func TestSubmit_InvalidInputNeverReachesRepo(t *testing.T) {
	cases := map[string]func(*SubmitInput){
		"slash date":       func(in *SubmitInput) { in.Date = "2024/01/15" },
		"impossible date":  func(in *SubmitInput) { in.Date = "2024-02-30" },
		"short date":       func(in *SubmitInput) { in.Date = "2024-1-5" },
		"empty date":       func(in *SubmitInput) { in.Date = "" },
		"unknown status":   func(in *SubmitInput) { in.Status = "approved" },
		"empty status":     func(in *SubmitInput) { in.Status = "" },
		"zero branch":      func(in *SubmitInput) { in.BranchID = 0 },
		"negative adopter": func(in *SubmitInput) { in.AdopterID = -4 },
		"zero animal":      func(in *SubmitInput) { in.AnimalID = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepo()
			svc := NewService(repo)

			in := validInput()
			mutate(&in)

			_, err := svc.Submit(context.Background(), in)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if repo.calls != 0 {
				t.Fatalf("expected no repo calls, got %d", repo.calls)
			}
		})
	}
}

func TestSubmit_DuplicateIsConflict(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	_, err := svc.Submit(context.Background(), validInput())
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestWithdraw_MissingIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	err := svc.Withdraw(context.Background(), KeyInput{BranchID: 9, AdopterID: 9, AnimalID: 9})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWithdraw_RemovesApplication(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := svc.Withdraw(context.Background(), validInput().KeyInput); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if len(repo.byKey) != 0 {
		t.Fatalf("expected empty repo, got %d", len(repo.byKey))
	}
}

func TestWithdraw_InvalidKeyNeverReachesRepo(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	err := svc.Withdraw(context.Background(), KeyInput{BranchID: 1, AdopterID: 0, AnimalID: 1})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected no repo calls, got %d", repo.calls)
	}
}

func TestUpdate_ChangesStatusAndDate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	in := validInput()
	in.Status = "Rejected"
	in.Date = "2024-03-01"
	if _, err := svc.Update(context.Background(), in); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := repo.byKey[in.key()]
	if got.Status != StatusRejected {
		t.Fatalf("expected %q, got %q", StatusRejected, got.Status)
	}
	if got.Date.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", got.Date.Format("2006-01-02"))
	}
}

func TestUpdate_MissingIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), validInput())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
