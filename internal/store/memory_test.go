package store

import (
	"context"
	"testing"
	"time"

	"campusq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSaveVersionConflict(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	q := &models.Queue{ID: "q1", Title: "Front Desk", Category: "library"}
	require.NoError(t, s.Insert(ctx, q))

	first, err := s.Get(ctx, "q1")
	require.NoError(t, err)
	second, err := s.Get(ctx, "q1")
	require.NoError(t, err)

	first.Title = "Front Desk A"
	require.NoError(t, s.Save(ctx, first))

	second.Title = "Front Desk B"
	err = s.Save(ctx, second)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := s.Get(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "Front Desk A", got.Title)
}

func TestMemoryStoreSaveDeletedRow(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	q := &models.Queue{ID: "q1"}
	require.NoError(t, s.Insert(ctx, q))

	existed, err := s.Delete(ctx, "q1")
	require.NoError(t, err)
	assert.True(t, existed)

	err = s.Save(ctx, q)
	assert.ErrorIs(t, err, ErrNotFound)

	existed, err = s.Delete(ctx, "q1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	q := &models.Queue{ID: "q1", Items: []models.Entry{{ID: "e1", Name: "Alice"}}}
	require.NoError(t, s.Insert(ctx, q))

	got, err := s.Get(ctx, "q1")
	require.NoError(t, err)
	got.Items[0].Name = "mutated"

	again, err := s.Get(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Items[0].Name)
}

func TestMemoryStoreDeleteCreatedBefore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	now := time.Now().UnixMilli()
	require.NoError(t, s.Insert(ctx, &models.Queue{ID: "old", CreatedAt: now - 1000}))
	require.NoError(t, s.Insert(ctx, &models.Queue{ID: "new", CreatedAt: now + 1000}))

	deleted, err := s.DeleteCreatedBefore(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "new")
	assert.NoError(t, err)

	deleted, err = s.DeleteCreatedBefore(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}
