// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/domain/product"
	"github.com/your-org/storefront-client/internal/infrastructure/storage"
)

func newTestStore(t *testing.T) (*Store, storage.Store) {
	t.Helper()

	fs, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	return NewStore(context.Background(), fs, logger), fs
}

func testProduct(id uint, name string, price float64) product.Product {
	return product.Product{
		ID:       id,
		Name:     name,
		Category: "Pods",
		Price:    price,
		Image:    "https://example.com/p.jpg",
	}
}

func TestAddItemMergesByProductID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	p := testProduct(1, "RELX Infinity", 29.99)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AddItem(ctx, p))
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddItemAppendsNewProducts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.AddItem(ctx, testProduct(5, "Nasty Juice", 21.99)))

	lines := s.Lines()
	require.Len(t, lines, 2)
	// Insertion order preserved
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, uint(5), lines[1].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestRemoveItem(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.RemoveItem(ctx, 1))
	assert.True(t, s.IsEmpty())

	// Removing an absent product is a no-op, not an error
	require.NoError(t, s.RemoveItem(ctx, 42))
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	removed, _ := newTestStore(t)
	zeroed, _ := newTestStore(t)
	for _, s := range []*Store{removed, zeroed} {
		require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
		require.NoError(t, s.AddItem(ctx, testProduct(2, "JUUL Starter Kit", 24.99)))
	}

	require.NoError(t, removed.RemoveItem(ctx, 1))
	require.NoError(t, zeroed.SetQuantity(ctx, 1, 0))

	assert.Equal(t, removed.Lines(), zeroed.Lines())

	// Also equivalent for an absent product
	require.NoError(t, zeroed.SetQuantity(ctx, 99, 0))
}

func TestSetQuantityReplaces(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.SetQuantity(ctx, 1, 7))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestSetQuantityRejectsNegative(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))

	err := s.SetQuantity(ctx, 1, -1)
	require.ErrorIs(t, err, ErrNegativeQuantity)

	// State untouched
	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.SetQuantity(context.Background(), 42, 3)
	require.ErrorIs(t, err, ErrLineNotFound)
}

func TestTotalsScenario(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.AddItem(ctx, testProduct(5, "Nasty Juice", 21.99)))

	totals := s.Totals()
	assert.InDelta(t, 81.97, totals.Subtotal, 0.001)
	assert.InDelta(t, 150.00, totals.Shipping, 0.001)
	assert.InDelta(t, 231.97, totals.Total, 0.001)
}

func TestTotalsEmptyCart(t *testing.T) {
	s, _ := newTestStore(t)

	totals := s.Totals()
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Shipping)
	assert.Zero(t, totals.Total)
}

func TestSubtotalInvariantUnderReordering(t *testing.T) {
	ctx := context.Background()
	products := []product.Product{
		testProduct(1, "RELX Infinity", 29.99),
		testProduct(2, "JUUL Starter Kit", 24.99),
		testProduct(3, "Vaporesso XROS", 34.99),
	}

	forward, _ := newTestStore(t)
	backward, _ := newTestStore(t)

	for _, p := range products {
		require.NoError(t, forward.AddItem(ctx, p))
	}
	for i := len(products) - 1; i >= 0; i-- {
		require.NoError(t, backward.AddItem(ctx, products[i]))
	}

	assert.InDelta(t, forward.Totals().Subtotal, backward.Totals().Subtotal, 0.001)
}

func TestClear(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.Clear(ctx))

	assert.True(t, s.IsEmpty())
	assert.Zero(t, s.ItemCount())
}

func TestPersistReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	s := NewStore(ctx, fs, logger)

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.AddItem(ctx, testProduct(5, "Nasty Juice", 21.99)))

	reloaded := NewStore(ctx, fs, logger)
	assert.Equal(t, s.Lines(), reloaded.Lines())

	// Every field survives the round trip
	lines := reloaded.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "RELX Infinity", lines[0].Name)
	assert.Equal(t, "Pods", lines[0].Category)
	assert.Equal(t, "https://example.com/p.jpg", lines[0].Image)
	assert.InDelta(t, 29.99, lines[0].UnitPrice, 0.001)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestMalformedPersistedCartStartsEmpty(t *testing.T) {
	ctx := context.Background()
	fs, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, storage.KeyCart, "{not json"))

	logger, _ := test.NewNullLogger()
	s := NewStore(ctx, fs, logger)

	assert.True(t, s.IsEmpty())
}

func TestSubscribersNotifiedAfterMutations(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	notified := 0
	s.Subscribe(func() { notified++ })

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.SetQuantity(ctx, 1, 3))
	require.NoError(t, s.RemoveItem(ctx, 1))
	require.NoError(t, s.Clear(ctx))

	assert.Equal(t, 4, notified)
}

func TestSubscriberMayReadStore(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var seen int
	s.Subscribe(func() { seen = s.ItemCount() })

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	assert.Equal(t, 1, seen)
}

func TestItemCountSumsQuantities(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.AddItem(ctx, testProduct(5, "Nasty Juice", 21.99)))

	assert.Equal(t, 3, s.ItemCount())
}

// flakyStore wraps a working store and can be switched to fail every call,
// simulating a storage outage mid-session.
type flakyStore struct {
	storage.Store
	failing bool
}

func (f *flakyStore) Get(ctx context.Context, key string) (string, error) {
	if f.failing {
		return "", fmt.Errorf("storage unavailable")
	}
	return f.Store.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key, value string) error {
	if f.failing {
		return fmt.Errorf("storage unavailable")
	}
	return f.Store.Set(ctx, key, value)
}

func TestFailedPersistRestoresPriorLines(t *testing.T) {
	fs, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()

	flaky := &flakyStore{Store: fs}
	ctx := context.Background()
	s := NewStore(ctx, flaky, logger)

	require.NoError(t, s.AddItem(ctx, testProduct(1, "RELX Infinity", 29.99)))
	require.NoError(t, s.AddItem(ctx, testProduct(5, "Nasty Juice", 21.99)))

	// Even with reads failing too, the cart must roll back to what it
	// held before the rejected mutation.
	flaky.failing = true

	require.Error(t, s.AddItem(ctx, testProduct(9, "Smok Nord 4", 44.50)))
	require.Error(t, s.SetQuantity(ctx, 1, 3))
	require.Error(t, s.Clear(ctx))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, uint(5), lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)
}
