package demotable

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-admin/internal/platform/apperr"
)

type spyRepo struct {
	inserted []Row
	renamed  [][2]string
}

func (r *spyRepo) Fetch(ctx context.Context) ([]Row, error) { return r.inserted, nil }
func (r *spyRepo) Initiate(ctx context.Context) error     { r.inserted = nil; return nil }
func (r *spyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.inserted)), nil
}

func (r *spyRepo) Insert(ctx context.Context, row Row) error {
	r.inserted = append(r.inserted, row)
	return nil
}

func (r *spyRepo) UpdateName(ctx context.Context, oldName, newName string) error {
	r.renamed = append(r.renamed, [2]string{oldName, newName})
	return nil
}

func TestInsert_TrimsAndStores(t *testing.T) {
	repo := &spyRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.Insert(context.Background(), InsertInput{ID: 1, Name: "  rex "}))
	assert.Equal(t, []Row{{ID: 1, Name: "rex"}}, repo.inserted)
}

func TestInsert_Validation(t *testing.T) {
	cases := map[string]InsertInput{
		"zero id":    {ID: 0, Name: "rex"},
		"empty name": {ID: 1, Name: "   "},
		"long name":  {ID: 1, Name: strings.Repeat("x", 21)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &spyRepo{}
			err := NewService(repo).Insert(context.Background(), in)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Empty(t, repo.inserted)
		})
	}
}

func TestUpdateName_Validation(t *testing.T) {
	repo := &spyRepo{}
	svc := NewService(repo)

	err := svc.UpdateName(context.Background(), UpdateNameInput{OldName: "", NewName: "max"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = svc.UpdateName(context.Background(), UpdateNameInput{OldName: "rex", NewName: strings.Repeat("y", 21)})
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, repo.renamed)

	require.NoError(t, svc.UpdateName(context.Background(), UpdateNameInput{OldName: "rex", NewName: "max"}))
	assert.Equal(t, [][2]string{{"rex", "max"}}, repo.renamed)
}
