package service

import (
	"context"
	"testing"

	"sample-be/internal/apperror"
	"sample-be/internal/dto"
	"sample-be/internal/testutil"
	"sample-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentEntityService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.parents.Create(ctx, &dto.ParentEntityDTO{RequiredField: strPtr("A")})
	require.NoError(t, err)
	require.NotNil(t, created.Id)
	assert.Equal(t, "A", *created.RequiredField)
	assert.Equal(t, []string{events.ParentEntityCreated}, f.publisher.types())

	found, err := f.parents.FindOne(ctx, *created.Id, false)
	require.NoError(t, err)
	assert.True(t, created.Equals(found))
}

func TestParentEntityService_CreateRejectsNullRequiredField(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, v := range []*string{nil, strPtr(""), strPtr("   ")} {
		_, err := f.parents.Create(ctx, &dto.ParentEntityDTO{RequiredField: v})
		assert.True(t, apperror.Is(err, apperror.KindValidationFailure))
	}

	page, err := f.parents.FindAll(ctx, dto.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Zero(t, page.TotalElements)
	assert.Empty(t, f.publisher.types())
}

func TestParentEntityService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := testutil.SeedParent(t, f.db, "before")

	updated, err := f.parents.Update(ctx, &dto.ParentEntityDTO{Id: &id, RequiredField: strPtr("after")})
	require.NoError(t, err)
	assert.Equal(t, "after", *updated.RequiredField)

	_, err = f.parents.Update(ctx, &dto.ParentEntityDTO{Id: int64Ptr(id + 100), RequiredField: strPtr("x")})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = f.parents.Update(ctx, &dto.ParentEntityDTO{RequiredField: strPtr("x")})
	assert.True(t, apperror.Is(err, apperror.KindMissingIdentity))
}

func TestParentEntityService_PartialUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := testutil.SeedParent(t, f.db, "keep")

	t.Run("absent key leaves field untouched", func(t *testing.T) {
		got, err := f.parents.PartialUpdate(ctx, &dto.ParentEntityPatch{Id: &id})
		require.NoError(t, err)
		assert.Equal(t, "keep", *got.RequiredField)
	})

	t.Run("value overwrites", func(t *testing.T) {
		patch := &dto.ParentEntityPatch{Id: &id, RequiredField: dto.Optional[string]{Present: true, Value: "new"}}
		got, err := f.parents.PartialUpdate(ctx, patch)
		require.NoError(t, err)
		assert.Equal(t, "new", *got.RequiredField)
	})

	t.Run("null is rejected for a required field", func(t *testing.T) {
		patch := &dto.ParentEntityPatch{Id: &id, RequiredField: dto.Optional[string]{Present: true, Null: true}}
		_, err := f.parents.PartialUpdate(ctx, patch)
		assert.True(t, apperror.Is(err, apperror.KindValidationFailure))

		got, err := f.parents.FindOne(ctx, id, false)
		require.NoError(t, err)
		assert.Equal(t, "new", *got.RequiredField)
	})

	t.Run("missing entity yields empty result", func(t *testing.T) {
		got, err := f.parents.PartialUpdate(ctx, &dto.ParentEntityPatch{Id: int64Ptr(id + 1)})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestParentEntityService_FindAllPaged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, v := range []string{"b", "c", "a"} {
		testutil.SeedParent(t, f.db, v)
	}

	page, err := f.parents.FindAll(ctx, dto.PageRequest{
		Page: 1,
		Size: 2,
		Sort: []dto.SortOrder{{Property: "requiredField"}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Content, 1)
	assert.Equal(t, "c", *page.Content[0].RequiredField)

	_, err = f.parents.FindAll(ctx, dto.PageRequest{Size: 2, Sort: []dto.SortOrder{{Property: "password"}}})
	assert.True(t, apperror.Is(err, apperror.KindValidationFailure))
}

func TestParentEntityService_FindAllRejectsOverflowingPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedParent(t, f.db, "a")

	page, err := f.parents.FindAll(ctx, dto.PageRequest{Page: 1 << 62, Size: 4})
	assert.Nil(t, page)
	assert.True(t, apperror.Is(err, apperror.KindValidationFailure))
}

func TestParentEntityService_FindOneWithChildren(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "user-1", "alice")
	id := testutil.SeedParent(t, f.db, "p")
	c := testutil.SeedChild(t, f.db, strPtr("x"), "user-1", id)

	got, err := f.parents.FindOne(ctx, id, true)
	require.NoError(t, err)
	require.Len(t, got.Children, 1)
	assert.Equal(t, c, *got.Children[0].Id)
	assert.Equal(t, "x", *got.Children[0].ChildField)

	missing, err := f.parents.FindOne(ctx, id+1, true)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestParentEntityService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "user-1", "alice")
	empty := testutil.SeedParent(t, f.db, "empty")
	busy := testutil.SeedParent(t, f.db, "busy")
	testutil.SeedChild(t, f.db, nil, "user-1", busy)

	require.NoError(t, f.parents.Delete(ctx, empty))
	// absent rows are absorbed
	require.NoError(t, f.parents.Delete(ctx, empty))
	assert.Equal(t, []string{events.ParentEntityDeleted}, f.publisher.types())

	err := f.parents.Delete(ctx, busy)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KeyHasChildren, appErr.ErrorKey)

	exists, err := f.parents.Exists(ctx, busy)
	require.NoError(t, err)
	assert.True(t, exists)
}
