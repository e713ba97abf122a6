package service

import (
	"context"
	"testing"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/dumu-tech/pixel-bazaar/internal/events"
	"github.com/dumu-tech/pixel-bazaar/internal/memstore"
	"github.com/dumu-tech/pixel-bazaar/internal/sim"
	"github.com/stretchr/testify/assert"
)

func newTestCatalog() (*CatalogService, *StorefrontService, *memstore.Store) {
	store := memstore.New(testSeed())
	bus := events.NewEventBus()
	catalog := NewCatalogService(store.Catalog(), store.Cart(), sim.Instant{}, bus)
	storefront := NewStorefrontService(store.Users(), store.Catalog(), store.Cart(), store.Transactions(), nil, sim.Instant{}, bus)
	return catalog, storefront, store
}

func TestGetItems_SentinelAndEmptyCategoryMatchEverything(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	ctx := context.Background()

	all, err := catalog.GetItems(ctx, "", "")
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	sentinel, err := catalog.GetItems(ctx, "All", "")
	assert.NoError(t, err)
	assert.Len(t, sentinel, 3)
}

func TestGetItems_FiltersByCategoryAndQuery(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	ctx := context.Background()

	bf, err := catalog.GetItems(ctx, "BF", "")
	assert.NoError(t, err)
	assert.Len(t, bf, 2)

	matched, err := catalog.GetItems(ctx, "BF", "chrono")
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "bf-003", matched[0].ID)

	none, err := catalog.GetItems(ctx, "TSB", "chrono")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddItem_GeneratesIDFromCategoryAndPrepends(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	ctx := context.Background()

	item, err := catalog.AddItem(ctx, core.ItemData{
		Title:    "Meteor Hammer",
		Price:    700,
		Category: "TSB",
	})
	assert.NoError(t, err)
	assert.Regexp(t, `^tsb-\d+$`, item.ID)

	items, _ := catalog.GetItems(ctx, "", "")
	assert.Equal(t, item.ID, items[0].ID)
}

func TestAddItem_NegativePriceRejected(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	_, err := catalog.AddItem(context.Background(), core.ItemData{
		Title:    "Cursed Relic",
		Price:    -100,
		Category: "TSB",
	})
	assert.ErrorIs(t, err, core.ErrInvalidPrice)
}

func TestEditItem_NegativePriceRejected(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	_, err := catalog.EditItem(context.Background(), "bf-003", core.ItemData{
		Title:    "Chrono Ball Skin",
		Price:    -1,
		Category: "BF",
	})
	assert.ErrorIs(t, err, core.ErrInvalidPrice)

	// The item is untouched.
	items, _ := catalog.GetItems(context.Background(), "", "chrono")
	assert.Len(t, items, 1)
	assert.Equal(t, 500, items[0].Price)
}

func TestEditItem_ReplacesFieldsAndKeepsID(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	ctx := context.Background()

	updated, err := catalog.EditItem(ctx, "bf-003", core.ItemData{
		Title:    "Chrono Ball Skin v2",
		Price:    600,
		Category: "BF",
	})
	assert.NoError(t, err)
	assert.Equal(t, "bf-003", updated.ID)
	assert.Equal(t, 600, updated.Price)

	_, err = catalog.EditItem(ctx, "ghost-999", core.ItemData{Title: "x"})
	assert.ErrorIs(t, err, core.ErrItemNotFound)
}

func TestEditItem_PropagatesSnapshotIntoCart(t *testing.T) {
	catalog, storefront, _ := newTestCatalog()
	ctx := context.Background()

	_, err := storefront.AddToCart(ctx, "bf-003")
	assert.NoError(t, err)
	_, err = storefront.UpdateCartItemQuantity(ctx, "bf-003", 2)
	assert.NoError(t, err)

	_, err = catalog.EditItem(ctx, "bf-003", core.ItemData{
		Title:    "Chrono Ball Skin",
		Price:    600,
		Category: "BF",
	})
	assert.NoError(t, err)

	cart, err := storefront.GetCart(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 600, cart[0].Item.Price)
	assert.Equal(t, 1200, core.CartSubtotal(cart))
}

func TestDeleteItem_LeavesDanglingCartReference(t *testing.T) {
	catalog, storefront, _ := newTestCatalog()
	ctx := context.Background()

	_, err := storefront.AddToCart(ctx, "bf-003")
	assert.NoError(t, err)

	id, err := catalog.DeleteItem(ctx, "bf-003")
	assert.NoError(t, err)
	assert.Equal(t, "bf-003", id)

	items, _ := catalog.GetItems(ctx, "", "")
	for _, item := range items {
		assert.NotEqual(t, "bf-003", item.ID)
	}

	// The cart entry survives as a snapshot; no cascade, no crash.
	cart, err := storefront.GetCart(ctx)
	assert.NoError(t, err)
	assert.Len(t, cart, 1)
	assert.Equal(t, "bf-003", cart[0].Item.ID)
}

func TestDeleteItem_MissFailsNotFound(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	_, err := catalog.DeleteItem(context.Background(), "ghost-999")
	assert.ErrorIs(t, err, core.ErrItemNotFound)
}

func TestAddCategory_TrimsAndInsertsAfterSentinel(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	categories, err := catalog.AddCategory(context.Background(), "  Pets  ")
	assert.NoError(t, err)
	assert.Equal(t, []string{"All", "Pets", "TSB", "BF"}, categories)
}

func TestAddCategory_CaseInsensitiveDuplicateFails(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	_, err := catalog.AddCategory(context.Background(), "bF")
	assert.ErrorIs(t, err, core.ErrDuplicateCategory)
}
