package service

import (
	"context"
	"testing"

	"sample-be/internal/apperror"
	"sample-be/internal/testutil"
	"sample-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipService_LinkChild(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "user-1", "alice")
	p1 := testutil.SeedParent(t, f.db, "p1")
	p2 := testutil.SeedParent(t, f.db, "p2")
	childId := testutil.SeedChild(t, f.db, strPtr("x"), "user-1", p1)

	linked, err := f.relationship.LinkChild(ctx, p2, childId)
	require.NoError(t, err)
	assert.Equal(t, p2, *linked.Parent.Id)
	assert.Equal(t, "p2", *linked.Parent.RequiredField)
	assert.Equal(t, "user-1", linked.Owner.Id)

	// both sides of the relationship reflect the move
	newParent, err := f.parents.FindOne(ctx, p2, true)
	require.NoError(t, err)
	require.Len(t, newParent.Children, 1)
	assert.Equal(t, childId, *newParent.Children[0].Id)

	oldParent, err := f.parents.FindOne(ctx, p1, true)
	require.NoError(t, err)
	assert.Empty(t, oldParent.Children)

	child, err := f.children.FindOne(ctx, childId)
	require.NoError(t, err)
	assert.Equal(t, p2, *child.Parent.Id)

	require.Len(t, f.publisher.events, 1)
	evt := f.publisher.events[0]
	assert.Equal(t, events.ChildEntityRelinked, evt.Type)
	assert.Equal(t, p1, evt.Extra["previous_parent_id"])
}

func TestRelationshipService_LinkToSameParentIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "user-1", "alice")
	p1 := testutil.SeedParent(t, f.db, "p1")
	childId := testutil.SeedChild(t, f.db, nil, "user-1", p1)

	linked, err := f.relationship.LinkChild(ctx, p1, childId)
	require.NoError(t, err)
	assert.Equal(t, p1, *linked.Parent.Id)
	assert.Empty(t, f.publisher.types())
}

func TestRelationshipService_Missing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "user-1", "alice")
	p1 := testutil.SeedParent(t, f.db, "p1")
	childId := testutil.SeedChild(t, f.db, nil, "user-1", p1)

	_, err := f.relationship.LinkChild(ctx, p1+10, childId)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "sampleParentEntity", appErr.EntityName)
	assert.Equal(t, 404, appErr.StatusCode())

	_, err = f.relationship.LinkChild(ctx, p1, childId+10)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "sampleChildEntity", appErr.EntityName)
}
