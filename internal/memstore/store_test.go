package memstore

import (
	"context"
	"testing"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/stretchr/testify/assert"
)

func seedStore() *Store {
	return New(core.Seed{
		Items: []core.Item{
			{ID: "bf-001", Title: "Infinity Edge Blade", Price: 1500, Category: "BF"},
			{ID: "tsb-001", Title: "Cosmic Gauntlet", Price: 1200, Category: "TSB"},
		},
		Categories: []string{core.SentinelCategory, "TSB", "BF"},
		User:       core.User{ID: "user-123", Username: "PlayerOne", Balance: 1500, Role: core.RoleUser},
	})
}

func TestAddItem_PrependsToList(t *testing.T) {
	s := seedStore()
	ctx := context.Background()

	err := s.Catalog().AddItem(ctx, core.Item{ID: "bf-900", Title: "New Blade", Category: "BF"})
	assert.NoError(t, err)

	items, err := s.Catalog().ListItems(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "bf-900", items[0].ID)
}

func TestGetItem_MissReturnsNotFound(t *testing.T) {
	s := seedStore()

	_, err := s.Catalog().GetItem(context.Background(), "nope")
	assert.ErrorIs(t, err, core.ErrItemNotFound)
}

func TestDeleteItem_RemovesAndErrorsOnMiss(t *testing.T) {
	s := seedStore()
	ctx := context.Background()

	assert.NoError(t, s.Catalog().DeleteItem(ctx, "bf-001"))

	items, _ := s.Catalog().ListItems(ctx)
	assert.Len(t, items, 1)
	assert.ErrorIs(t, s.Catalog().DeleteItem(ctx, "bf-001"), core.ErrItemNotFound)
}

func TestAddCategory_InsertsAfterSentinel(t *testing.T) {
	s := seedStore()

	categories, err := s.Catalog().AddCategory(context.Background(), "Pets")
	assert.NoError(t, err)
	assert.Equal(t, []string{"All", "Pets", "TSB", "BF"}, categories)
}

func TestAddCategory_RejectsEmptyAndCaseInsensitiveDuplicate(t *testing.T) {
	s := seedStore()
	ctx := context.Background()

	_, err := s.Catalog().AddCategory(ctx, "   ")
	assert.ErrorIs(t, err, core.ErrEmptyCategoryName)

	_, err = s.Catalog().AddCategory(ctx, "tsb")
	assert.ErrorIs(t, err, core.ErrDuplicateCategory)

	_, err = s.Catalog().AddCategory(ctx, "all")
	assert.ErrorIs(t, err, core.ErrDuplicateCategory)
}

func TestListItems_ReturnsIndependentCopy(t *testing.T) {
	s := seedStore()
	ctx := context.Background()

	items, _ := s.Catalog().ListItems(ctx)
	items[0].Title = "mutated"

	again, _ := s.Catalog().ListItems(ctx)
	assert.Equal(t, "Infinity Edge Blade", again[0].Title)
}

func TestUserRepository_SaveDoesNotShareOwnedSlice(t *testing.T) {
	s := seedStore()
	ctx := context.Background()

	owned := []string{"bf-001"}
	user, _ := s.Users().Current(ctx)
	user.OwnedItemIDs = owned
	assert.NoError(t, s.Users().Save(ctx, *user))

	owned[0] = "mutated"

	stored, _ := s.Users().Current(ctx)
	assert.Equal(t, []string{"bf-001"}, stored.OwnedItemIDs)
}

func TestTransactionLog_AppendPrependsNewest(t *testing.T) {
	s := seedStore()
	ctx := context.Background()

	assert.NoError(t, s.Transactions().Append(ctx, core.Transaction{ID: "txn-a", TotalAmount: 100}))
	assert.NoError(t, s.Transactions().Append(ctx, core.Transaction{ID: "txn-b", TotalAmount: 200}))

	txns, err := s.Transactions().List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "txn-b", txns[0].ID)
	assert.Equal(t, "txn-a", txns[1].ID)
}

func TestNew_ForcesSentinelCategory(t *testing.T) {
	s := New(core.Seed{Categories: []string{"TSB"}})

	categories, _ := s.Catalog().ListCategories(context.Background())
	assert.Equal(t, "All", categories[0])
}
