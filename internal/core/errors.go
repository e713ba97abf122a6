package core

import "errors"

// Storefront failure kinds. Every failure is recoverable by retrying or
// correcting input; handlers map these to transport codes with errors.Is.
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrAlreadyOwned        = errors.New("you already own this item")
	ErrNotInCart           = errors.New("item not in cart")
	ErrInsufficientBalance = errors.New("insufficient balance, please top up your wallet")
	ErrTransientNetwork    = errors.New("a wild network error appeared, please try again")
	ErrInvalidAmount       = errors.New("top-up amount must be positive")
	ErrInvalidPrice        = errors.New("price must be non-negative")
	ErrEmptyCategoryName   = errors.New("category name cannot be empty")
	ErrDuplicateCategory   = errors.New("category already exists")
	ErrRoleNotEligible     = errors.New("admins don't need to top up")
	ErrUnknownRole         = errors.New("unknown role")
)

// CodeOf returns a stable machine-readable code for a failure kind,
// or "INTERNAL" for anything outside the taxonomy.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrAlreadyOwned):
		return "ALREADY_OWNED"
	case errors.Is(err, ErrNotInCart):
		return "NOT_IN_CART"
	case errors.Is(err, ErrInsufficientBalance):
		return "INSUFFICIENT_BALANCE"
	case errors.Is(err, ErrTransientNetwork):
		return "TRANSIENT_NETWORK"
	case errors.Is(err, ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, ErrInvalidPrice):
		return "INVALID_PRICE"
	case errors.Is(err, ErrEmptyCategoryName):
		return "EMPTY_NAME"
	case errors.Is(err, ErrDuplicateCategory):
		return "DUPLICATE_CATEGORY"
	case errors.Is(err, ErrRoleNotEligible):
		return "ROLE_NOT_ELIGIBLE"
	case errors.Is(err, ErrUnknownRole):
		return "UNKNOWN_ROLE"
	default:
		return "INTERNAL"
	}
}
