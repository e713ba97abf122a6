package core

import "context"

// CatalogRepository defines the interface for item and category data access
type CatalogRepository interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	AddItem(ctx context.Context, item Item) error
	UpdateItem(ctx context.Context, item Item) error
	DeleteItem(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) ([]string, error)
}

// CartRepository defines the interface for the current session's cart.
// Implementations store the full cart as one unit; entry-level rules
// (increment, remove-on-zero) live in the service layer.
type CartRepository interface {
	Get(ctx context.Context) ([]CartItem, error)
	Save(ctx context.Context, cart []CartItem) error
	Clear(ctx context.Context) error
}

// UserRepository defines the interface for the single session user
type UserRepository interface {
	Current(ctx context.Context) (*User, error)
	Save(ctx context.Context, user User) error
}

// TransactionLog defines the append-only purchase record store.
// List returns transactions newest first.
type TransactionLog interface {
	Append(ctx context.Context, txn Transaction) error
	List(ctx context.Context) ([]Transaction, error)
}

// TransactionArchive is an optional write-behind sink for completed
// transactions. Archive failures must never fail a checkout.
type TransactionArchive interface {
	Archive(ctx context.Context, txn Transaction) error
}
