package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siraj-eng/ShifaaEcommerce/controllers"
	"github.com/siraj-eng/ShifaaEcommerce/middleware"
)

// SetupShopRoutes configures catalog, cart and order routes
func SetupShopRoutes(app *fiber.App) {
	products := app.Group("/products")
	products.Get("/", controllers.GetAllProducts)
	products.Get("/:id", controllers.GetProduct)

	cart := app.Group("/cart", middleware.Protected())
	cart.Get("/", controllers.GetCart)
	cart.Post("/items", controllers.AddToCart)
	cart.Patch("/items/:id", controllers.UpdateCartItem)
	cart.Delete("/items/:id", controllers.RemoveCartItem)

	orders := app.Group("/orders", middleware.Protected())
	orders.Post("/checkout", controllers.Checkout)
	orders.Get("/", controllers.GetOrders)
	orders.Get("/:id", controllers.GetOrder)
	orders.Post("/:id/reorder", controllers.Reorder)
}
