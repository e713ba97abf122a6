package http

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts every storefront operation on the app. Shared by
// cmd/server and the handler tests so both exercise the same route table.
func RegisterRoutes(app *fiber.App, h *Handler, dh *DashboardHandler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"project": "pixel-bazaar",
		})
	})

	api := app.Group("/api")

	api.Get("/user", h.GetUser)
	api.Post("/user/switch", h.SwitchUser)
	api.Post("/wallet/topup", h.TopUpWallet)

	api.Get("/items", h.GetItems)
	api.Post("/items", h.AddItem)
	api.Put("/items/:id", h.EditItem)
	api.Delete("/items/:id", h.DeleteItem)

	api.Get("/categories", h.GetCategories)
	api.Post("/categories", h.AddCategory)

	api.Get("/cart", h.GetCart)
	api.Post("/cart", h.AddToCart)
	api.Put("/cart/:itemId", h.UpdateCartItemQuantity)
	api.Delete("/cart/:itemId", h.RemoveFromCart)

	api.Post("/checkout", h.Checkout)

	api.Get("/dashboard", dh.GetSalesDashboardData)
	api.Get("/dashboard/report", dh.DownloadSalesReport)
	api.Get("/dashboard/events", dh.SSEEvents)
}
