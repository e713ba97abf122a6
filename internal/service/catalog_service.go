package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/dumu-tech/pixel-bazaar/internal/events"
	"github.com/dumu-tech/pixel-bazaar/internal/sim"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CatalogService handles item browsing and the admin catalog mutations.
type CatalogService struct {
	catalog  core.CatalogRepository
	cart     core.CartRepository
	policy   sim.Policy
	eventBus *events.EventBus
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog core.CatalogRepository, cart core.CartRepository, policy sim.Policy, eventBus *events.EventBus) *CatalogService {
	return &CatalogService{
		catalog:  catalog,
		cart:     cart,
		policy:   policy,
		eventBus: eventBus,
	}
}

// GetItems lists catalog items newest first, optionally narrowed by category
// and a case-insensitive title/description search. The "All" sentinel and an
// empty category both match everything.
func (s *CatalogService) GetItems(ctx context.Context, category string, query string) ([]core.Item, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	filterCategory := category != "" && !strings.EqualFold(category, core.SentinelCategory)
	needle := strings.ToLower(strings.TrimSpace(query))
	if !filterCategory && needle == "" {
		return items, nil
	}

	filtered := make([]core.Item, 0, len(items))
	for _, item := range items {
		if filterCategory && !strings.EqualFold(item.Category, category) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Title), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// GetCategories lists category names, sentinel first
func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.ListCategories(ctx)
}

// AddItem creates a catalog item with a fresh id and prepends it to the list
func (s *CatalogService) AddItem(ctx context.Context, data core.ItemData) (*core.Item, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}
	if data.Price < 0 {
		return nil, core.ErrInvalidPrice
	}

	item := core.Item{
		ID:          s.newItemID(ctx, data.Category),
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Category:    data.Category,
	}
	if err := s.catalog.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	s.eventBus.PublishItemAdded(item)
	logrus.WithFields(logrus.Fields{"op": "add_item", "item_id": item.ID}).Info("item added")
	return &item, nil
}

// EditItem replaces every field except the id and pushes the updated
// snapshot into any cart entry referencing the item, so the cart reflects
// the current price and title. Historical transactions are never touched.
func (s *CatalogService) EditItem(ctx context.Context, itemID string, data core.ItemData) (*core.Item, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}
	if data.Price < 0 {
		return nil, core.ErrInvalidPrice
	}

	updated := core.Item{
		ID:          itemID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Category:    data.Category,
	}
	if err := s.catalog.UpdateItem(ctx, updated); err != nil {
		return nil, err
	}

	cart, err := s.cart.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	changed := false
	for i := range cart {
		if cart[i].Item.ID == itemID {
			cart[i].Item = updated
			changed = true
		}
	}
	if changed {
		if err := s.cart.Save(ctx, cart); err != nil {
			return nil, fmt.Errorf("failed to refresh cart snapshot: %w", err)
		}
	}

	s.eventBus.PublishItemUpdated(updated)
	logrus.WithFields(logrus.Fields{"op": "edit_item", "item_id": itemID}).Info("item updated")
	return &updated, nil
}

// DeleteItem removes an item from the catalog. Cart entries and owned-item
// lists keep their references; display code filters the dangling ids out.
func (s *CatalogService) DeleteItem(ctx context.Context, itemID string) (string, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return "", err
	}

	if err := s.catalog.DeleteItem(ctx, itemID); err != nil {
		return "", err
	}

	s.eventBus.PublishItemDeleted(itemID)
	logrus.WithFields(logrus.Fields{"op": "delete_item", "item_id": itemID}).Info("item deleted")
	return itemID, nil
}

// AddCategory adds a category right after the "All" sentinel
func (s *CatalogService) AddCategory(ctx context.Context, name string) ([]string, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	categories, err := s.catalog.AddCategory(ctx, name)
	if err != nil {
		return nil, err
	}

	s.eventBus.PublishCategoryAdded(strings.TrimSpace(name))
	logrus.WithFields(logrus.Fields{"op": "add_category", "name": strings.TrimSpace(name)}).Info("category added")
	return categories, nil
}

// newItemID derives an id from the category slug and creation time, with a
// uuid suffix if that exact id is somehow taken already.
func (s *CatalogService) newItemID(ctx context.Context, category string) string {
	slug := strings.ReplaceAll(strings.ToLower(category), " ", "")
	id := fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	if _, err := s.catalog.GetItem(ctx, id); err == nil {
		id = fmt.Sprintf("%s-%s", slug, uuid.NewString()[:8])
	}
	return id
}
