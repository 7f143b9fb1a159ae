package implementation

import (
	"context"
	"testing"

	"sample-be/internal/entity"
	"sample-be/internal/repository/specification"
	"sample-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParentEntityRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewParentEntityRepository(db)
	ctx := context.Background()

	parent := &entity.ParentEntity{RequiredField: strPtr("alpha")}
	require.NoError(t, repo.Create(ctx, parent))
	require.NotNil(t, parent.Id)

	found, err := repo.FindOne(ctx, specification.ByID{ID: *parent.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alpha", *found.RequiredField)
	assert.Empty(t, found.Children())

	exists, err := repo.ExistsById(ctx, *parent.Id)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestParentEntityRepository_FindOneMissing(t *testing.T) {
	repo := NewParentEntityRepository(testutil.NewDB(t))

	found, err := repo.FindOne(context.Background(), specification.ByID{ID: 42})
	assert.NoError(t, err)
	assert.Nil(t, found)

	exists, err := repo.ExistsById(context.Background(), 42)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestParentEntityRepository_Update(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewParentEntityRepository(db)
	ctx := context.Background()
	id := testutil.SeedParent(t, db, "before")

	require.NoError(t, repo.Update(ctx, &entity.ParentEntity{Id: &id, RequiredField: strPtr("after")}))

	found, err := repo.FindOne(ctx, specification.ByID{ID: id})
	require.NoError(t, err)
	assert.Equal(t, "after", *found.RequiredField)
}

func TestParentEntityRepository_DeleteAbsentIsNoop(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewParentEntityRepository(db)
	ctx := context.Background()
	id := testutil.SeedParent(t, db, "x")

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestParentEntityRepository_DeleteWithChildrenFails(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewParentEntityRepository(db)
	testutil.SeedUser(t, db, "user-1", "alice")
	id := testutil.SeedParent(t, db, "x")
	testutil.SeedChild(t, db, nil, "user-1", id)

	assert.Error(t, repo.Delete(context.Background(), id))
}

func TestParentEntityRepository_FindOneWithChildren(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewParentEntityRepository(db)
	testutil.SeedUser(t, db, "user-1", "alice")
	id := testutil.SeedParent(t, db, "p")
	other := testutil.SeedParent(t, db, "q")
	c1 := testutil.SeedChild(t, db, strPtr("one"), "user-1", id)
	c2 := testutil.SeedChild(t, db, strPtr("two"), "user-1", id)
	testutil.SeedChild(t, db, strPtr("elsewhere"), "user-1", other)

	parent, err := repo.FindOneWithChildren(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, parent)

	children := parent.Children()
	require.Len(t, children, 2)
	assert.Equal(t, c1, *children[0].Id)
	assert.Equal(t, c2, *children[1].Id)
	for _, c := range children {
		assert.Same(t, parent, c.Parent())
	}
}

func TestParentEntityRepository_FindAllPaged(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewParentEntityRepository(db)
	ctx := context.Background()
	for _, v := range []string{"c", "a", "b"} {
		testutil.SeedParent(t, db, v)
	}

	page, err := repo.FindAll(ctx,
		specification.OrderBy{Field: "required_field"},
		specification.Pagination{Limit: 2, Offset: 0},
	)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "a", *page[0].RequiredField)
	assert.Equal(t, "b", *page[1].RequiredField)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
