package repository

import (
	"context"
	"testing"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	items, err := store.GetItems(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, items)

	saved := []domain.LineItem{
		{ProductID: 1, Name: "Шарики", Price: 10000, Quantity: 2},
		{ProductID: 2, Name: "Торт", Price: 5000, Quantity: 1},
	}
	require.NoError(t, store.SaveItems(ctx, "t1", saved))

	items, err = store.GetItems(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, saved, items)

	// Order must survive storage.
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, int64(2), items[1].ProductID)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveItems(ctx, "t1", []domain.LineItem{{ProductID: 1, Quantity: 1}}))

	items, err := store.GetItems(ctx, "t1")
	require.NoError(t, err)
	items[0].Quantity = 99

	again, err := store.GetItems(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].Quantity)
}

func TestMemoryStore_SaveEmptyDeletes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveItems(ctx, "t1", []domain.LineItem{{ProductID: 1, Quantity: 1}}))
	require.NoError(t, store.SaveItems(ctx, "t1", nil))

	items, err := store.GetItems(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryStore_DeleteAbsentCartIsNoop(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.DeleteCart(context.Background(), "missing"))
}

func TestMemoryStore_TokensAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveItems(ctx, "a", []domain.LineItem{{ProductID: 1, Quantity: 1}}))
	require.NoError(t, store.SaveItems(ctx, "b", []domain.LineItem{{ProductID: 2, Quantity: 3}}))

	a, err := store.GetItems(ctx, "a")
	require.NoError(t, err)
	b, err := store.GetItems(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, int64(1), a[0].ProductID)
	assert.Equal(t, int64(2), b[0].ProductID)
}
