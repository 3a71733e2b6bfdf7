package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siraj-eng/ShifaaEcommerce/controllers"
	"github.com/siraj-eng/ShifaaEcommerce/middleware"
)

// SetupAdminRoutes configures the administrative surface
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireAdmin())

	admin.Post("/products", controllers.CreateProduct)
	admin.Patch("/products/:id", controllers.UpdateProduct)
	admin.Delete("/products/:id", controllers.DeactivateProduct)

	admin.Post("/practitioners", controllers.CreatePractitioner)
	admin.Patch("/practitioners/:id", controllers.UpdatePractitioner)

	admin.Patch("/orders/:id/status", controllers.UpdateOrderStatus)
	admin.Patch("/appointments/:id/status", controllers.UpdateAppointmentStatus)
}
