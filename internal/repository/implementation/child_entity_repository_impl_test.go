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

func int64Ptr(v int64) *int64 { return &v }

func TestChildEntityRepository_Create(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewChildEntityRepository(db)
	ctx := context.Background()
	testutil.SeedUser(t, db, "user-1", "alice")
	parentId := testutil.SeedParent(t, db, "p")

	parent := &entity.ParentEntity{Id: int64Ptr(parentId)}
	child := &entity.ChildEntity{ChildField: strPtr("c"), Owner: &entity.User{Id: "user-1"}}
	entity.LinkChild(parent, child)

	require.NoError(t, repo.Create(ctx, child))
	require.NotNil(t, child.Id)

	found, err := repo.FindOne(ctx, specification.ByID{ID: *child.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "c", *found.ChildField)
	assert.Equal(t, "user-1", found.Owner.Id)
	assert.Equal(t, parentId, *found.Parent().Id)
	// not joined: only the reference id is known
	assert.Nil(t, found.Parent().RequiredField)
	assert.Empty(t, found.Owner.Login)
}

func TestChildEntityRepository_CreateUnknownParentFails(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewChildEntityRepository(db)
	testutil.SeedUser(t, db, "user-1", "alice")

	child := &entity.ChildEntity{Owner: &entity.User{Id: "user-1"}}
	entity.LinkChild(&entity.ParentEntity{Id: int64Ptr(999)}, child)

	assert.Error(t, repo.Create(context.Background(), child))
}

func TestChildEntityRepository_UpdateClearsField(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewChildEntityRepository(db)
	ctx := context.Background()
	testutil.SeedUser(t, db, "user-1", "alice")
	p1 := testutil.SeedParent(t, db, "p1")
	p2 := testutil.SeedParent(t, db, "p2")
	id := testutil.SeedChild(t, db, strPtr("v"), "user-1", p1)

	child := &entity.ChildEntity{Id: int64Ptr(id), Owner: &entity.User{Id: "user-1"}}
	entity.LinkChild(&entity.ParentEntity{Id: int64Ptr(p2)}, child)
	require.NoError(t, repo.Update(ctx, child))

	found, err := repo.FindOne(ctx, specification.ByID{ID: id})
	require.NoError(t, err)
	assert.Nil(t, found.ChildField)
	assert.Equal(t, p2, *found.Parent().Id)
}

func TestChildEntityRepository_FindOneWithRelationships(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewChildEntityRepository(db)
	testutil.SeedUser(t, db, "user-1", "alice")
	p := testutil.SeedParent(t, db, "p")
	id := testutil.SeedChild(t, db, strPtr("v"), "user-1", p)

	found, err := repo.FindOneWithRelationships(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alice", found.Owner.Login)
	assert.Equal(t, "p", *found.Parent().RequiredField)
	assert.True(t, found.Parent().HasChild(found))

	missing, err := repo.FindOneWithRelationships(context.Background(), id+1)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChildEntityRepository_FindAllWithRelationships(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewChildEntityRepository(db)
	ctx := context.Background()
	testutil.SeedUser(t, db, "user-1", "alice")
	testutil.SeedUser(t, db, "user-2", "bob")
	p := testutil.SeedParent(t, db, "p")
	for i := 0; i < 5; i++ {
		testutil.SeedChild(t, db, nil, "user-1", p)
	}
	testutil.SeedChild(t, db, nil, "user-2", p)

	all, err := repo.FindAllWithRelationships(ctx,
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: 4, Offset: 0},
	)
	require.NoError(t, err)
	require.Len(t, all, 4)
	ids := map[int64]bool{}
	for _, c := range all {
		assert.False(t, ids[*c.Id], "duplicate child %d", *c.Id)
		ids[*c.Id] = true
		assert.Equal(t, "alice", c.Owner.Login)
		assert.Equal(t, "p", *c.Parent().RequiredField)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)

	mine, err := repo.FindAllWithRelationships(ctx, specification.ByOwnerID{OwnerID: "user-2"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "bob", mine[0].Owner.Login)
}

func TestChildEntityRepository_CountByParent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewChildEntityRepository(db)
	testutil.SeedUser(t, db, "user-1", "alice")
	p1 := testutil.SeedParent(t, db, "p1")
	p2 := testutil.SeedParent(t, db, "p2")
	testutil.SeedChild(t, db, nil, "user-1", p1)
	testutil.SeedChild(t, db, nil, "user-1", p1)
	testutil.SeedChild(t, db, nil, "user-1", p2)

	count, err := repo.Count(context.Background(), specification.ByParentID{ParentID: p1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestChildEntityRepository_Delete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewChildEntityRepository(db)
	ctx := context.Background()
	testutil.SeedUser(t, db, "user-1", "alice")
	p := testutil.SeedParent(t, db, "p")
	id := testutil.SeedChild(t, db, nil, "user-1", p)

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))

	exists, err := repo.ExistsById(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
}
