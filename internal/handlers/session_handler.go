package handlers

import (
	"log/slog"
	"marketplace-service/internal/models"
	"marketplace-service/internal/services"
	"marketplace-service/internal/utils"
	"net/http"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	app *services.App
}

func NewSessionHandler(app *services.App) *SessionHandler {
	return &SessionHandler{app: app}
}

func (h *SessionHandler) Register(app *fiber.App) {
	sessionGr := app.Group(apiPrefix + "/session")

	sessionGr.Post("/login", h.Login)
	sessionGr.Post("/logout", h.Logout)
}

// Login is a mock: any known role is accepted without credentials.
func (h *SessionHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse request body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_ROLE", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.app.Login(role)))
}

func (h *SessionHandler) Logout(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.app.Logout()))
}
