package handlers

import (
	"marketplace-service/internal/services"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// NewServer wires every handler onto a fresh fiber app backed by state.
func NewServer(state *services.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "KisanBazaar Marketplace",
	})
	app.Use(recover.New())
	app.Use(logger.New())

	NewHealthHandler(state).Register(app)
	NewMarketplaceHandler(state).Register(app)
	NewSessionHandler(state).Register(app)
	NewAdviceHandler(state).Register(app)

	return app
}
