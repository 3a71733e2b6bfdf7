package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/siraj-eng/ShifaaEcommerce/cron"
	"github.com/siraj-eng/ShifaaEcommerce/db"
	"github.com/siraj-eng/ShifaaEcommerce/redis"
	"github.com/siraj-eng/ShifaaEcommerce/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	db.Seed()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Shifaa Herbal API"})
	})
	routes.SetupAuthRoutes(app)
	routes.SetupShopRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
