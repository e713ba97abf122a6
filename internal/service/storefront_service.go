package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/dumu-tech/pixel-bazaar/internal/events"
	"github.com/dumu-tech/pixel-bazaar/internal/sim"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StorefrontService handles the shopper-facing operations: session identity,
// cart mutation, wallet top-ups and checkout. Every operation passes through
// the simulation policy so callers see it as a pending remote call.
type StorefrontService struct {
	users    core.UserRepository
	catalog  core.CatalogRepository
	cart     core.CartRepository
	txlog    core.TransactionLog
	archive  core.TransactionArchive // optional, may be nil
	policy   sim.Policy
	eventBus *events.EventBus
}

// NewStorefrontService creates a new storefront service
func NewStorefrontService(
	users core.UserRepository,
	catalog core.CatalogRepository,
	cart core.CartRepository,
	txlog core.TransactionLog,
	archive core.TransactionArchive,
	policy sim.Policy,
	eventBus *events.EventBus,
) *StorefrontService {
	return &StorefrontService{
		users:    users,
		catalog:  catalog,
		cart:     cart,
		txlog:    txlog,
		archive:  archive,
		policy:   policy,
		eventBus: eventBus,
	}
}

// GetUser returns the current session user
func (s *StorefrontService) GetUser(ctx context.Context) (*core.User, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}
	return s.users.Current(ctx)
}

// GetCart returns the current cart contents
func (s *StorefrontService) GetCart(ctx context.Context) ([]core.CartItem, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}
	return s.cart.Get(ctx)
}

// AddToCart puts one unit of an item into the cart, incrementing the
// quantity if the item is already there. Owned items cannot be re-added.
func (s *StorefrontService) AddToCart(ctx context.Context, itemID string) ([]core.CartItem, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	user, err := s.users.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Owns(itemID) {
		logrus.WithFields(logrus.Fields{"op": "add_to_cart", "item_id": itemID}).Warn("rejected: already owned")
		return nil, core.ErrAlreadyOwned
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cart.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	found := false
	for i := range cart {
		if cart[i].Item.ID == itemID {
			cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, core.CartItem{Item: *item, Quantity: 1})
	}

	if err := s.cart.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	logrus.WithFields(logrus.Fields{"op": "add_to_cart", "item_id": itemID}).Info("item added to cart")
	return cart, nil
}

// UpdateCartItemQuantity sets the quantity of a cart entry. A quantity of
// zero or less removes the entry; this is also how removal is expressed.
func (s *StorefrontService) UpdateCartItemQuantity(ctx context.Context, itemID string, quantity int) ([]core.CartItem, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	cart, err := s.cart.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	idx := -1
	for i := range cart {
		if cart[i].Item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, core.ErrNotInCart
	}

	if quantity <= 0 {
		cart = append(cart[:idx], cart[idx+1:]...)
	} else {
		cart[idx].Quantity = quantity
	}

	if err := s.cart.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return cart, nil
}

// RemoveFromCart drops an entry unconditionally. Removing an absent item is
// not an error.
func (s *StorefrontService) RemoveFromCart(ctx context.Context, itemID string) ([]core.CartItem, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	cart, err := s.cart.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	kept := cart[:0]
	for _, ci := range cart {
		if ci.Item.ID != itemID {
			kept = append(kept, ci)
		}
	}

	if err := s.cart.Save(ctx, kept); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return kept, nil
}

// Checkout converts the cart into a balance debit, an ownership grant and an
// immutable transaction record. The transient-failure roll happens after the
// balance check and before any state changes, so a failed checkout leaves
// cart and balance untouched.
func (s *StorefrontService) Checkout(ctx context.Context) (*core.CheckoutResult, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	cart, err := s.cart.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	user, err := s.users.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	total := core.CartSubtotal(cart)
	if user.Balance < total {
		logrus.WithFields(logrus.Fields{"op": "checkout", "total": total, "balance": user.Balance}).Warn("rejected: insufficient balance")
		return nil, core.ErrInsufficientBalance
	}

	if s.policy.CheckoutFailure() {
		logrus.WithField("op", "checkout").Warn("injected transient network failure")
		return nil, core.ErrTransientNetwork
	}

	txn := core.Transaction{
		ID:          "txn-" + uuid.NewString(),
		Date:        time.Now(),
		UserID:      user.ID,
		Username:    user.Username,
		TotalAmount: total,
	}
	for _, ci := range cart {
		txn.Lines = append(txn.Lines, core.TransactionLine{
			ItemID:    ci.Item.ID,
			Title:     ci.Item.Title,
			Quantity:  ci.Quantity,
			UnitPrice: ci.Item.Price,
		})
	}
	// The cart is cleared before the debit is committed; a clear failure
	// (possible with the Redis-backed cart) aborts the checkout with the
	// balance untouched, so a retry cannot charge the same cart twice.
	if err := s.cart.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	if err := s.txlog.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	user.Balance -= total
	for _, ci := range cart {
		if !user.Owns(ci.Item.ID) {
			user.OwnedItemIDs = append(user.OwnedItemIDs, ci.Item.ID)
		}
	}
	if err := s.users.Save(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if s.archive != nil {
		if err := s.archive.Archive(ctx, txn); err != nil {
			// Best-effort audit copy; the in-memory log already has the record.
			logrus.WithError(err).WithField("txn_id", txn.ID).Error("failed to archive transaction")
		}
	}

	s.eventBus.PublishCheckoutCompleted(txn)
	logrus.WithFields(logrus.Fields{
		"op":      "checkout",
		"txn_id":  txn.ID,
		"user_id": user.ID,
		"total":   total,
	}).Info("checkout completed")

	return &core.CheckoutResult{User: *user, Cart: []core.CartItem{}}, nil
}

// TopUpWallet credits the balance. Admins are not eligible and the amount
// must be positive; there is deliberately no upper bound.
func (s *StorefrontService) TopUpWallet(ctx context.Context, amount int) (*core.User, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, core.ErrInvalidAmount
	}

	user, err := s.users.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Role == core.RoleAdmin {
		return nil, core.ErrRoleNotEligible
	}

	user.Balance += amount
	if err := s.users.Save(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.eventBus.PublishWalletToppedUp(user.ID, user.Balance)
	logrus.WithFields(logrus.Fields{"op": "top_up", "user_id": user.ID, "amount": amount}).Info("wallet topped up")
	return user, nil
}

// SwitchUser swaps the session identity for the preset profile of the target
// role. Owned items carry over so purchases survive role changes; the cart
// does not.
func (s *StorefrontService) SwitchUser(ctx context.Context, role core.Role) (*core.User, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	next, err := core.PresetProfile(role)
	if err != nil {
		return nil, err
	}

	current, err := s.users.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	next.OwnedItemIDs = current.OwnedItemIDs

	if err := s.users.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	logrus.WithFields(logrus.Fields{"op": "switch_user", "role": role}).Info("session user switched")
	return &next, nil
}
