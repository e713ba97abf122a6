package http

import (
	"errors"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/dumu-tech/pixel-bazaar/internal/service"
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the storefront and catalog operations over HTTP
type Handler struct {
	storefront *service.StorefrontService
	catalog    *service.CatalogService
}

// NewHandler creates a new storefront handler
func NewHandler(storefront *service.StorefrontService, catalog *service.CatalogService) *Handler {
	return &Handler{
		storefront: storefront,
		catalog:    catalog,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, core.ErrAlreadyOwned),
		errors.Is(err, core.ErrNotInCart),
		errors.Is(err, core.ErrDuplicateCategory):
		return fiber.StatusConflict
	case errors.Is(err, core.ErrInsufficientBalance):
		return fiber.StatusPaymentRequired
	case errors.Is(err, core.ErrTransientNetwork):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidPrice),
		errors.Is(err, core.ErrEmptyCategoryName),
		errors.Is(err, core.ErrRoleNotEligible),
		errors.Is(err, core.ErrUnknownRole):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// failure maps a service error to a labeled JSON failure
func failure(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
		"code":  core.CodeOf(err),
	})
}

// GetUser returns the current session user
// GET /api/user
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.storefront.GetUser(c.Context())
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(user)
}

// SwitchUser swaps the session identity for a preset role profile
// POST /api/user/switch
func (h *Handler) SwitchUser(c *fiber.Ctx) error {
	var req struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.storefront.SwitchUser(c.Context(), core.Role(req.Role))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(user)
}

// TopUpWallet credits the current user's balance
// POST /api/wallet/topup
func (h *Handler) TopUpWallet(c *fiber.Ctx) error {
	var req struct {
		Amount int `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.storefront.TopUpWallet(c.Context(), req.Amount)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(user)
}

// GetItems lists catalog items, optionally filtered
// GET /api/items?category=BF&q=blade
func (h *Handler) GetItems(c *fiber.Ctx) error {
	items, err := h.catalog.GetItems(c.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(items)
}

// AddItem creates a catalog item
// POST /api/items
func (h *Handler) AddItem(c *fiber.Ctx) error {
	var req core.ItemData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	item, err := h.catalog.AddItem(c.Context(), req)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// EditItem replaces all fields of an item except its id
// PUT /api/items/:id
func (h *Handler) EditItem(c *fiber.Ctx) error {
	var req core.ItemData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	item, err := h.catalog.EditItem(c.Context(), c.Params("id"), req)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(item)
}

// DeleteItem removes an item from the catalog
// DELETE /api/items/:id
func (h *Handler) DeleteItem(c *fiber.Ctx) error {
	id, err := h.catalog.DeleteItem(c.Context(), c.Params("id"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

// GetCategories lists category names
// GET /api/categories
func (h *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.GetCategories(c.Context())
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(categories)
}

// AddCategory adds a category after the "All" sentinel
// POST /api/categories
func (h *Handler) AddCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	categories, err := h.catalog.AddCategory(c.Context(), req.Name)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(categories)
}

// GetCart returns the current cart
// GET /api/cart
func (h *Handler) GetCart(c *fiber.Ctx) error {
	cart, err := h.storefront.GetCart(c.Context())
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(cart)
}

// AddToCart adds one unit of an item to the cart
// POST /api/cart
func (h *Handler) AddToCart(c *fiber.Ctx) error {
	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "item_id is required",
		})
	}

	cart, err := h.storefront.AddToCart(c.Context(), req.ItemID)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(cart)
}

// UpdateCartItemQuantity sets a cart entry's quantity; zero removes it
// PUT /api/cart/:itemId
func (h *Handler) UpdateCartItemQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	cart, err := h.storefront.UpdateCartItemQuantity(c.Context(), c.Params("itemId"), req.Quantity)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(cart)
}

// RemoveFromCart drops a cart entry unconditionally
// DELETE /api/cart/:itemId
func (h *Handler) RemoveFromCart(c *fiber.Ctx) error {
	cart, err := h.storefront.RemoveFromCart(c.Context(), c.Params("itemId"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(cart)
}

// Checkout converts the cart into a purchase
// POST /api/checkout
func (h *Handler) Checkout(c *fiber.Ctx) error {
	result, err := h.storefront.Checkout(c.Context())
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(result)
}
