package core

import "time"

// Item represents a purchasable catalog entry
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// ItemData carries the mutable fields of an Item for create/edit requests
type ItemData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// Role represents the access level of the session user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents the current session identity
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Balance      int      `json:"balance"`
	AvatarURL    string   `json:"avatar_url"`
	OwnedItemIDs []string `json:"owned_item_ids"` // set semantics, deduplicated on write
	Role         Role     `json:"role"`
}

// Owns reports whether the user already owns the given item.
func (u *User) Owns(itemID string) bool {
	for _, id := range u.OwnedItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// CartItem pairs an item snapshot with a quantity.
// The embedded Item is a copy, not a live catalog reference; catalog edits
// are propagated into it explicitly so the cart shows current price/title.
type CartItem struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// CartSubtotal computes the cart total on demand from the embedded snapshots.
func CartSubtotal(cart []CartItem) int {
	total := 0
	for _, ci := range cart {
		total += ci.Item.Price * ci.Quantity
	}
	return total
}

// TransactionLine is a purchase line captured at checkout time.
// Later edits or deletes of the catalog item never alter it.
type TransactionLine struct {
	ItemID    string `json:"item_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// Transaction is an immutable record of one completed checkout
type Transaction struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	UserID      string            `json:"user_id"`
	Username    string            `json:"username"`
	Lines       []TransactionLine `json:"items"`
	TotalAmount int               `json:"total_amount"`
}

// BestSellingItem is a per-item sales aggregate derived from the transaction log
type BestSellingItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UnitsSold int    `json:"units_sold"`
	Revenue   int    `json:"revenue"`
}

// DashboardData is the derived sales view, recomputed on every query
type DashboardData struct {
	TotalRevenue       int               `json:"total_revenue"`
	TotalItemsSold     int               `json:"total_items_sold"`
	TotalSales         int               `json:"total_sales"`
	BestSellingItems   []BestSellingItem `json:"best_selling_items"`
	RecentTransactions []Transaction     `json:"recent_transactions"`
}

// CheckoutResult bundles the post-checkout user and (empty) cart
type CheckoutResult struct {
	User User       `json:"user"`
	Cart []CartItem `json:"cart"`
}

// SentinelCategory matches every item and can never be removed or duplicated.
// New categories are inserted immediately after it.
const SentinelCategory = "All"
