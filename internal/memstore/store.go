// Package memstore is the simulated database: a single in-memory store
// constructed once at boot, owning all mutable storefront state. Every read
// returns an independent copy so callers can never reach internal state
// through a returned reference.
package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
)

// Store implements CatalogRepository, CartRepository, UserRepository and
// TransactionLog over plain slices guarded by one mutex.
type Store struct {
	mu         sync.Mutex
	items      []core.Item // most recently added first
	categories []string    // sentinel "All" at index 0
	user       core.User
	cart       []core.CartItem
	txns       []core.Transaction // newest first

	catalog *catalogRepository
	cartRep *cartRepository
	users   *userRepository
	txlog   *transactionLog
}

type catalogRepository struct{ *Store }
type cartRepository struct{ *Store }
type userRepository struct{ *Store }
type transactionLog struct{ *Store }

// New builds a store from seed data. The seed slices are copied in.
func New(seed core.Seed) *Store {
	s := &Store{
		items:      append([]core.Item(nil), seed.Items...),
		categories: append([]string(nil), seed.Categories...),
		user:       cloneUser(seed.User),
		txns:       cloneTransactions(seed.Transactions),
	}
	if len(s.categories) == 0 || s.categories[0] != core.SentinelCategory {
		s.categories = append([]string{core.SentinelCategory}, s.categories...)
	}
	s.catalog = &catalogRepository{s}
	s.cartRep = &cartRepository{s}
	s.users = &userRepository{s}
	s.txlog = &transactionLog{s}
	return s
}

// Catalog returns the CatalogRepository view of the store.
func (s *Store) Catalog() core.CatalogRepository { return s.catalog }

// Cart returns the CartRepository view of the store.
func (s *Store) Cart() core.CartRepository { return s.cartRep }

// Users returns the UserRepository view of the store.
func (s *Store) Users() core.UserRepository { return s.users }

// Transactions returns the TransactionLog view of the store.
func (s *Store) Transactions() core.TransactionLog { return s.txlog }

// catalog

func (r *catalogRepository) ListItems(ctx context.Context) ([]core.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Item(nil), r.items...), nil
}

func (r *catalogRepository) GetItem(ctx context.Context, id string) (*core.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, core.ErrItemNotFound
}

func (r *catalogRepository) AddItem(ctx context.Context, item core.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]core.Item{item}, r.items...)
	return nil
}

func (r *catalogRepository) UpdateItem(ctx context.Context, item core.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return core.ErrItemNotFound
}

func (r *catalogRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return core.ErrItemNotFound
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.categories...), nil
}

func (r *catalogRepository) AddCategory(ctx context.Context, name string) ([]string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, core.ErrEmptyCategoryName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if strings.EqualFold(c, trimmed) {
			return nil, core.ErrDuplicateCategory
		}
	}
	// Insert right after the "All" sentinel.
	updated := make([]string, 0, len(r.categories)+1)
	updated = append(updated, r.categories[0], trimmed)
	updated = append(updated, r.categories[1:]...)
	r.categories = updated
	return append([]string(nil), r.categories...), nil
}

// cart

func (r *cartRepository) Get(ctx context.Context) ([]core.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.CartItem(nil), r.cart...), nil
}

func (r *cartRepository) Save(ctx context.Context, cart []core.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart = append([]core.CartItem(nil), cart...)
	return nil
}

func (r *cartRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart = nil
	return nil
}

// user

func (r *userRepository) Current(ctx context.Context) (*core.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := cloneUser(r.user)
	return &u, nil
}

func (r *userRepository) Save(ctx context.Context, user core.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = cloneUser(user)
	return nil
}

// transaction log

func (r *transactionLog) Append(ctx context.Context, txn core.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = append([]core.Transaction{cloneTransaction(txn)}, r.txns...)
	return nil
}

func (r *transactionLog) List(ctx context.Context) ([]core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneTransactions(r.txns), nil
}

func cloneUser(u core.User) core.User {
	u.OwnedItemIDs = append([]string(nil), u.OwnedItemIDs...)
	return u
}

func cloneTransaction(t core.Transaction) core.Transaction {
	t.Lines = append([]core.TransactionLine(nil), t.Lines...)
	return t
}

func cloneTransactions(txns []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, len(txns))
	for i, t := range txns {
		out[i] = cloneTransaction(t)
	}
	return out
}
