package memory

import (
	"context"
	"testing"
	"time"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/horses"
	"horse-registry/internal/domain/owners"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func mustCreate(t *testing.T, repo horses.Repository, h horses.Horse) horses.Horse {
	t.Helper()
	if h.DateOfBirth.IsZero() {
		h.DateOfBirth = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	created, err := repo.Create(context.Background(), h)
	require.NoError(t, err)
	return created
}

func TestHorseRepo_GetAncestors_SharedAncestor(t *testing.T) {
	repo := NewStore().Horses()
	ctx := context.Background()

	shared := mustCreate(t, repo, horses.Horse{Name: "Shared", Sex: horses.SexFemale})
	mare := mustCreate(t, repo, horses.Horse{Name: "Mare", Sex: horses.SexFemale, MotherID: ptr(shared.ID)})
	stallion := mustCreate(t, repo, horses.Horse{Name: "Stallion", Sex: horses.SexMale, MotherID: ptr(shared.ID)})
	foal := mustCreate(t, repo, horses.Horse{Name: "Foal", Sex: horses.SexMale, MotherID: ptr(mare.ID), FatherID: ptr(stallion.ID)})

	all, err := repo.GetAncestors(ctx, foal.ID, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	two, err := repo.GetAncestors(ctx, foal.ID, 2)
	require.NoError(t, err)
	assert.Len(t, two, 3)

	none, err := repo.GetAncestors(ctx, foal.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.GetAncestors(ctx, 404, 3)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestHorseRepo_DeleteClearsChildren(t *testing.T) {
	repo := NewStore().Horses()
	ctx := context.Background()

	mare := mustCreate(t, repo, horses.Horse{Name: "Mare", Sex: horses.SexFemale})
	a := mustCreate(t, repo, horses.Horse{Name: "A", Sex: horses.SexMale, MotherID: ptr(mare.ID)})
	b := mustCreate(t, repo, horses.Horse{Name: "B", Sex: horses.SexMale, FatherID: ptr(a.ID), MotherID: ptr(mare.ID)})

	children, err := repo.GetChildren(ctx, mare.ID)
	require.NoError(t, err)
	assert.Len(t, children, 2)

	require.NoError(t, repo.Delete(ctx, mare.ID))

	gotB, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, gotB.MotherID)
	assert.Equal(t, ptr(a.ID), gotB.FatherID)

	children, err = repo.GetChildren(ctx, mare.ID)
	require.NoError(t, err)
	assert.Empty(t, children)

	assert.ErrorIs(t, repo.Delete(ctx, mare.ID), apperr.ErrNotFound)
}

func TestHorseRepo_SearchByOwnerName(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	ann, err := store.Owners().Create(ctx, owners.CreateInput{FirstName: "Ann", LastName: "Smith"})
	require.NoError(t, err)

	mustCreate(t, store.Horses(), horses.Horse{Name: "Owned", Sex: horses.SexMale, OwnerID: ptr(ann.ID)})
	mustCreate(t, store.Horses(), horses.Horse{Name: "Stray", Sex: horses.SexMale})

	found, err := store.Horses().Search(ctx, horses.SearchFilter{OwnerName: ptr("N SMI")})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Owned", found[0].Name)

	found, err = store.Horses().Search(ctx, horses.SearchFilter{Limit: ptr(0)})
	require.NoError(t, err)
	assert.Empty(t, found)
	found, err = store.Horses().Search(ctx, horses.SearchFilter{Limit: ptr(-1)})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestOwnerRepo_Search(t *testing.T) {
	repo := NewStore().Owners()
	ctx := context.Background()

	for _, name := range []string{"Ann", "Anna", "Bob"} {
		_, err := repo.Create(ctx, owners.CreateInput{FirstName: name, LastName: "Doe"})
		require.NoError(t, err)
	}

	found, err := repo.Search(ctx, owners.SearchFilter{Name: "an", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.Search(ctx, owners.SearchFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, int64(1), found[0].ID)
}
