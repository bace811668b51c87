package handlers

import (
	"marketplace-service/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	app *services.App
}

func NewHealthHandler(app *services.App) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Register(app *fiber.App) {
	app.Get("/checkhealth", h.CheckHealth)
}

// CheckHealth reports a missing advice credential without failing the probe.
func (h *HealthHandler) CheckHealth(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":           "Marketplace service is healthy",
		"advice_available": h.app.Snapshot().AdviceAvailable,
	})
}
