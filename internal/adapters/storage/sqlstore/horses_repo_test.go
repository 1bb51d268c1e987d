package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"horse-registry/internal/adapters/storage/sqlite"
	"horse-registry/internal/adapters/storage/sqlstore"
	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/horses"
	"horse-registry/internal/domain/owners"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(sqlite.InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlstore.MigrateUp(context.Background(), db, sqlstore.SQLite))
	return db
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

// seed carga el mismo set de caballos que usan los tests de integración:
// ids negativos para no chocar con los que asigna la base.
func seed(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO owner (id, first_name, last_name, email) VALUES (-1, 'Ann', 'Smith', 'ann@example.com')`)
	require.NoError(t, err)

	rows := []struct {
		id     int64
		name   string
		desc   any
		dob    time.Time
		sex    string
		owner  any
		mother any
		father any
	}{
		{-1, "Wendy", "The famous one!", day("2012-12-12"), "FEMALE", int64(-1), nil, nil},
		{-2, "SuitableMother", nil, day("2000-01-01"), "FEMALE", nil, nil, nil},
		{-3, "SuitableFather", nil, day("2000-01-01"), "MALE", nil, nil, nil},
		{-4, "SuitableChildForSuitableMotherAndSuitableFather", nil, day("2010-01-01"), "MALE", nil, int64(-2), int64(-3)},
		{-5, "GrandChild", nil, day("2020-01-01"), "FEMALE", nil, nil, int64(-4)},
	}
	for _, r := range rows {
		_, err := db.ExecContext(ctx, `
			INSERT INTO horse (id, name, description, date_of_birth, sex, owner_id, mother_id, father_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.id, r.name, r.desc, r.dob, r.sex, r.owner, r.mother, r.father)
		require.NoError(t, err)
	}
}

func TestHorsesRepo_CreateGetUpdate(t *testing.T) {
	db := openDB(t)
	repo := sqlstore.NewHorsesRepo(db, sqlstore.SQLite)
	ctx := context.Background()

	created, err := repo.Create(ctx, horses.Horse{
		Name:        "Wendy",
		Description: ptr("The famous one!"),
		DateOfBirth: day("2012-12-12"),
		Sex:         horses.SexFemale,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got.Name = "Wendy II"
	got.Description = nil
	_, err = repo.Update(ctx, got)
	require.NoError(t, err)

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wendy II", again.Name)
	assert.Nil(t, again.Description)

	_, err = repo.Update(ctx, horses.Horse{ID: 999, Name: "x", DateOfBirth: day("2000-01-01"), Sex: horses.SexMale})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestHorsesRepo_Search(t *testing.T) {
	db := openDB(t)
	seed(t, db)
	repo := sqlstore.NewHorsesRepo(db, sqlstore.SQLite)
	ctx := context.Background()

	found, err := repo.Search(ctx, horses.SearchFilter{Name: ptr("Sui")})
	require.NoError(t, err)
	assert.Len(t, found, 3)

	found, err = repo.Search(ctx, horses.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, found, 5)
	assert.Equal(t, int64(-5), found[0].ID)

	found, err = repo.Search(ctx, horses.SearchFilter{Limit: ptr(2)})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.Search(ctx, horses.SearchFilter{Sex: ptr(horses.SexFemale), BornBefore: ptr(day("2012-12-12"))})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(-2), found[0].ID)

	found, err = repo.Search(ctx, horses.SearchFilter{OwnerName: ptr("ann smith")})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Wendy", found[0].Name)

	found, err = repo.Search(ctx, horses.SearchFilter{Description: ptr("famous")})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestHorsesRepo_SearchMatchesWildcardsLiterally(t *testing.T) {
	db := openDB(t)
	repo := sqlstore.NewHorsesRepo(db, sqlstore.SQLite)
	ownersRepo := sqlstore.NewOwnersRepo(db, sqlstore.SQLite)
	ctx := context.Background()

	owner, err := ownersRepo.Create(ctx, owners.CreateInput{FirstName: "Ann", LastName: "Smith"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, horses.Horse{Name: "Abc", DateOfBirth: day("2000-01-01"), Sex: horses.SexMale, OwnerID: ptr(owner.ID)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, horses.Horse{Name: "100% Arab_Mare", Description: ptr("50% off"), DateOfBirth: day("2001-01-01"), Sex: horses.SexFemale})
	require.NoError(t, err)

	cases := []struct {
		name   string
		filter horses.SearchFilter
		want   []string
	}{
		{"percent in name", horses.SearchFilter{Name: ptr("A%c")}, nil},
		{"underscore in name", horses.SearchFilter{Name: ptr("_")}, []string{"100% Arab_Mare"}},
		{"literal percent", horses.SearchFilter{Name: ptr("0% a")}, []string{"100% Arab_Mare"}},
		{"percent in description", horses.SearchFilter{Description: ptr("%")}, []string{"100% Arab_Mare"}},
		{"underscore in owner name", horses.SearchFilter{OwnerName: ptr("A_n")}, nil},
		{"backslash", horses.SearchFilter{Name: ptr(`\`)}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := repo.Search(ctx, tc.filter)
			require.NoError(t, err)
			var names []string
			for _, h := range found {
				names = append(names, h.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}

	found, err := ownersRepo.Search(ctx, owners.SearchFilter{Name: "%", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestHorsesRepo_GetAncestors(t *testing.T) {
	db := openDB(t)
	seed(t, db)
	repo := sqlstore.NewHorsesRepo(db, sqlstore.SQLite)
	ctx := context.Background()

	ids := func(list []horses.Horse) []int64 {
		out := make([]int64, 0, len(list))
		for _, h := range list {
			out = append(out, h.ID)
		}
		return out
	}

	all, err := repo.GetAncestors(ctx, -5, 100)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{-5, -4, -3, -2}, ids(all))

	two, err := repo.GetAncestors(ctx, -5, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{-5, -4}, ids(two))

	none, err := repo.GetAncestors(ctx, -5, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.GetAncestors(ctx, 404, 5)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	tree := horses.BuildFamilyTree(-5, all)
	require.NotNil(t, tree)
	assert.Equal(t, int64(-2), tree.Father.Mother.ID)
	assert.Equal(t, int64(-3), tree.Father.Father.ID)
}

func TestHorsesRepo_ChildrenAndDelete(t *testing.T) {
	db := openDB(t)
	seed(t, db)
	repo := sqlstore.NewHorsesRepo(db, sqlstore.SQLite)
	ctx := context.Background()

	children, err := repo.GetChildren(ctx, -2)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, int64(-4), children[0].ID)

	require.NoError(t, repo.Delete(ctx, -2))

	child, err := repo.GetByID(ctx, -4)
	require.NoError(t, err)
	assert.Nil(t, child.MotherID)
	assert.Equal(t, ptr(int64(-3)), child.FatherID)
	assert.Equal(t, day("2010-01-01"), child.DateOfBirth)

	assert.ErrorIs(t, repo.Delete(ctx, -2), apperr.ErrNotFound)

	byIDs, err := repo.GetAllByIDs(ctx, []int64{-2, -3, -4})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)
}

func TestOwnersRepo(t *testing.T) {
	db := openDB(t)
	repo := sqlstore.NewOwnersRepo(db, sqlstore.SQLite)
	ctx := context.Background()

	ann, err := repo.Create(ctx, owners.CreateInput{FirstName: "Ann", LastName: "Smith", Email: ptr("ann@example.com")})
	require.NoError(t, err)
	bob, err := repo.Create(ctx, owners.CreateInput{FirstName: "Bob", LastName: "Annis"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, ann, got)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	found, err := repo.Search(ctx, owners.SearchFilter{Name: "ann", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.Search(ctx, owners.SearchFilter{Name: "ann s", Limit: 10})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ann.ID, found[0].ID)

	found, err = repo.Search(ctx, owners.SearchFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	byIDs, err := repo.GetAllByIDs(ctx, []int64{ann.ID, bob.ID, 999})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)
	assert.Nil(t, byIDs[bob.ID].Email)
}

func TestMigrateDownAndUp(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	v, err := sqlstore.Version(ctx, db, sqlstore.SQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	require.NoError(t, sqlstore.MigrateDown(ctx, db, sqlstore.SQLite))
	v, err = sqlstore.Version(ctx, db, sqlstore.SQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	require.NoError(t, sqlstore.MigrateUp(ctx, db, sqlstore.SQLite))
}
