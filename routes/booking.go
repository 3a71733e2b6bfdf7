package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siraj-eng/ShifaaEcommerce/controllers"
	"github.com/siraj-eng/ShifaaEcommerce/middleware"
)

// SetupBookingRoutes configures practitioner and appointment routes
func SetupBookingRoutes(app *fiber.App) {
	practitioners := app.Group("/practitioners")
	practitioners.Get("/", controllers.GetAllPractitioners)
	practitioners.Get("/:id", controllers.GetPractitioner)

	appointments := app.Group("/appointments", middleware.Protected())
	appointments.Post("/", controllers.BookAppointment)
	appointments.Get("/", controllers.GetAppointments)
	appointments.Get("/:id", controllers.GetAppointment)

	app.Get("/dashboard", middleware.Protected(), controllers.GetDashboard)
}
