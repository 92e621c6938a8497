package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welhome/properties-api/internal/properties/domain"
)

// runStoreContract exercises the behaviour every engine must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	apt := domain.PropertyInput{Title: "Apt 101", Address: "Flower St 123", Status: domain.StatusActive}
	loft := domain.PropertyInput{Title: "Loft", Address: "River Rd 9", Status: domain.StatusInactive}

	t.Run("create assigns unique ids", func(t *testing.T) {
		store := newStore(t)

		a, err := store.Create(ctx, apt)
		require.NoError(t, err)
		b, err := store.Create(ctx, loft)
		require.NoError(t, err)

		assert.NotZero(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, "Apt 101", a.Title)
		assert.Equal(t, "Flower St 123", a.Address)
		assert.Equal(t, domain.StatusActive, a.Status)
	})

	t.Run("list returns insertion order with each record once", func(t *testing.T) {
		store := newStore(t)

		empty, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		a, err := store.Create(ctx, apt)
		require.NoError(t, err)
		b, err := store.Create(ctx, loft)
		require.NoError(t, err)

		items, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, *a, items[0])
		assert.Equal(t, *b, items[1])
	})

	t.Run("invalid status is rejected and not persisted", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Create(ctx, domain.PropertyInput{Title: "Apt 101", Address: "Flower St 123", Status: "sold"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidProperty))

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("get returns the record or not found", func(t *testing.T) {
		store := newStore(t)

		a, err := store.Create(ctx, apt)
		require.NoError(t, err)

		got, err := store.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a, got)

		_, err = store.Get(ctx, a.ID+100)
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})

	t.Run("update overwrites mutable fields and keeps id", func(t *testing.T) {
		store := newStore(t)

		a, err := store.Create(ctx, apt)
		require.NoError(t, err)

		updated, err := store.Update(ctx, a.ID, loft)
		require.NoError(t, err)
		assert.Equal(t, a.ID, updated.ID)
		assert.Equal(t, "Loft", updated.Title)
		assert.Equal(t, "River Rd 9", updated.Address)
		assert.Equal(t, domain.StatusInactive, updated.Status)

		got, err := store.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("update of missing id leaves store unchanged", func(t *testing.T) {
		store := newStore(t)

		a, err := store.Create(ctx, apt)
		require.NoError(t, err)

		_, err = store.Update(ctx, a.ID+1, loft)
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Property{*a}, items)
	})

	t.Run("delete removes and second delete is not found", func(t *testing.T) {
		store := newStore(t)

		a, err := store.Create(ctx, apt)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, a.ID))

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		assert.ErrorIs(t, store.Delete(ctx, a.ID), domain.ErrPropertyNotFound)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		store := newStore(t)

		a, err := store.Create(ctx, apt)
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, a.ID))

		b, err := store.Create(ctx, loft)
		require.NoError(t, err)
		assert.Greater(t, b.ID, a.ID)
	})
}
