package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/ujjwalnp/ZenithTREKS/configs"
	"github.com/ujjwalnp/ZenithTREKS/database"
	"github.com/ujjwalnp/ZenithTREKS/handlers"
	"github.com/ujjwalnp/ZenithTREKS/routes"
	"github.com/ujjwalnp/ZenithTREKS/storage"
)

func main() {
	db := database.Connect()
	database.Migrate(db)
	database.SeedAdmin(db)

	uploadDir := config.ConfigDefault("UPLOAD_DIR", "uploads")
	h := handlers.New(
		db,
		storage.NewLocal(uploadDir),
		storage.NewLocal(filepath.Join(uploadDir, "gallery")),
	)

	app := fiber.New(fiber.Config{
		AppName:       "ZenithTREKS",
		CaseSensitive: true,
		StrictRouting: false,
		BodyLimit:     20 * 1024 * 1024,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_ORIGIN", "http://localhost:3000"),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app, h)
	routes.TripRoutes(app, h)
	routes.BookingRoutes(app, h)
	routes.ReviewRoutes(app, h)
	routes.MediaRoutes(app, h)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.ConfigDefault("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
