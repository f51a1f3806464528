package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService() *CartService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCartService(repository.NewMemoryStore(), logger)
}

func TestCartService_AddItem_MergesByProductID(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService()
	balloons := domain.NewItem{ProductID: 1, Name: "Воздушные шарики", Price: 25000}

	// Adding 1 three times must equal adding 3 once.
	for i := 0; i < 3; i++ {
		_, err := svc.AddItem(ctx, "t1", balloons, 1)
		require.NoError(t, err)
	}
	once, err := svc.AddItem(ctx, "t2", balloons, 3)
	require.NoError(t, err)

	thrice, err := svc.Summary(ctx, "t1")
	require.NoError(t, err)

	assert.Equal(t, once.Items, thrice.Items)
	require.Len(t, thrice.Items, 1)
	assert.Equal(t, 3, thrice.Items[0].Quantity)
	assert.Equal(t, 3, thrice.TotalItems)
	assert.Equal(t, int64(75000), thrice.TotalPrice)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService()
	item := domain.NewItem{ProductID: 1, Name: "Шарики", Price: 10000}

	_, err := svc.AddItem(ctx, "t1", item, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, "t1", item, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// The rejected calls must not have created a cart.
	summary, err := svc.Summary(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestCartService_AddItem_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService()

	_, err := svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 10, Name: "Гирлянда", Price: 15000}, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 20, Name: "Свечи", Price: 8000}, 2)
	require.NoError(t, err)

	// Merging into the first line must not move it.
	summary, err := svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 10, Name: "Гирлянда", Price: 15000}, 1)
	require.NoError(t, err)

	require.Len(t, summary.Items, 2)
	assert.Equal(t, int64(10), summary.Items[0].ProductID)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, int64(20), summary.Items[1].ProductID)
}

func TestCartService_UpdateQuantity_SetsAbsoluteValue(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService()

	_, err := svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 1, Name: "Шарики", Price: 25000}, 5)
	require.NoError(t, err)

	summary, err := svc.UpdateQuantity(ctx, "t1", 1, 3)
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Quantity)
	assert.Equal(t, int64(75000), summary.TotalPrice)
}

func TestCartService_UpdateQuantity_ZeroOrBelowRemovesLine(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService()

	for _, qty := range []int{0, -1} {
		_, err := svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 1, Name: "Шарики", Price: 10000}, 2)
		require.NoError(t, err)

		summary, err := svc.UpdateQuantity(ctx, "t1", 1, qty)
		require.NoError(t, err)
		assert.Empty(t, summary.Items)
		assert.Equal(t, 0, summary.TotalItems)
		assert.Equal(t, int64(0), summary.TotalPrice)
	}
}

func TestCartService_UpdateQuantity_AbsentProductIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService()

	_, err := svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 1, Name: "Шарики", Price: 10000}, 1)
	require.NoError(t, err)

	summary, err := svc.UpdateQuantity(ctx, "t1", 999, 4)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 1, summary.Items[0].Quantity)
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService()

	_, err := svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 1, Name: "Шарики", Price: 10000}, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 2, Name: "Торт", Price: 90000}, 1)
	require.NoError(t, err)

	summary, err := svc.RemoveItem(ctx, "t1", 1)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, int64(2), summary.Items[0].ProductID)

	// Removing the same line again is fine.
	summary, err = svc.RemoveItem(ctx, "t1", 1)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService()

	_, err := svc.AddItem(ctx, "t1", domain.NewItem{ProductID: 1, Name: "Шарики", Price: 10000}, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "t1"))

	summary, err := svc.Summary(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestCartService_SummaryForUnknownTokenIsEmpty(t *testing.T) {
	svc := newTestCartService()

	summary, err := svc.Summary(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.TotalItems)
}
