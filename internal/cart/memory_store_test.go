package cart

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestMemoryStore_AddLine_NewThenIncrement(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	p := domain.Product{ID: "1", Title: "Laptop X", Price: 1000}

	added, err := store.AddLine(ctx, "s1", p)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.AddLine(ctx, "s1", p)
	require.NoError(t, err)
	assert.False(t, added, "second add must increment, not create")

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestMemoryStore_AddLine_KeepsInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := store.AddLine(ctx, "s1", domain.Product{ID: fmt.Sprint(i)})
		require.NoError(t, err)
	}
	// bump an early line; order must not change
	_, err := store.AddLine(ctx, "s1", domain.Product{ID: "2"})
	require.NoError(t, err)

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 5)
	for i, line := range cart.Lines {
		assert.Equal(t, fmt.Sprint(i+1), line.Product.ID)
	}
	assert.Equal(t, 2, cart.Lines[1].Quantity)
}

func TestMemoryStore_UpdateQuantity(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	_, err := store.AddLine(ctx, "s1", domain.Product{ID: "1"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateQuantity(ctx, "s1", "1", 7))

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Lines[0].Quantity)
}

func TestMemoryStore_UpdateQuantity_MissingIsNoop(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.UpdateQuantity(ctx, "s1", "1", 3))

	_, err := store.AddLine(ctx, "s1", domain.Product{ID: "1"})
	require.NoError(t, err)
	assert.NoError(t, store.UpdateQuantity(ctx, "s1", "other", 3))

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestMemoryStore_RemoveLine(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	_, err := store.AddLine(ctx, "s1", domain.Product{ID: "1"})
	require.NoError(t, err)
	_, err = store.AddLine(ctx, "s1", domain.Product{ID: "2"})
	require.NoError(t, err)

	removed, err := store.RemoveLine(ctx, "s1", "1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.RemoveLine(ctx, "s1", "1")
	require.NoError(t, err)
	assert.False(t, removed)

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "2", cart.Lines[0].Product.ID)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	_, err := store.AddLine(ctx, "s1", domain.Product{ID: "1"})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "s1"))

	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestMemoryStore_GetReturnsDetachedCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	_, err := store.AddLine(ctx, "s1", domain.Product{ID: "1"})
	require.NoError(t, err)

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	cart.Lines[0].Quantity = 99

	fresh, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Lines[0].Quantity)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	_, err := store.AddLine(ctx, "s1", domain.Product{ID: "1"})
	require.NoError(t, err)
	_, err = store.AddLine(ctx, "s2", domain.Product{ID: "2"})
	require.NoError(t, err)

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "1", cart.Lines[0].Product.ID)
}

func TestMemoryStore_ConcurrentAdds(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	p := domain.Product{ID: "1"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.AddLine(ctx, "s1", p)
		}()
	}
	wg.Wait()

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 50, cart.Lines[0].Quantity)
}
