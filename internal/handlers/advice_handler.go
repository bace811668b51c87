package handlers

import (
	"errors"
	"log/slog"
	"marketplace-service/internal/models"
	"marketplace-service/internal/services"
	"marketplace-service/internal/utils"
	"net/http"

	"github.com/gofiber/fiber/v3"
)

type AdviceHandler struct {
	app *services.App
}

func NewAdviceHandler(app *services.App) *AdviceHandler {
	return &AdviceHandler{app: app}
}

func (h *AdviceHandler) Register(app *fiber.App) {
	adviceGr := app.Group(apiPrefix + "/advice")

	adviceGr.Post("/", h.SubmitQuery)
	adviceGr.Delete("/error", h.DismissError)
}

// SubmitQuery blocks until the advice service answers.
func (h *AdviceHandler) SubmitQuery(c fiber.Ctx) error {
	var req models.AdviceRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse request body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	advice, err := h.app.SubmitAdviceQuery(c.Context(), req.Query)
	if err != nil {
		status, code := adviceErrorStatus(err)
		return c.Status(status).JSON(utils.CreateErrorResponse(code, err.Error()))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(advice))
}

func (h *AdviceHandler) DismissError(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.app.DismissAdviceError()))
}

func adviceErrorStatus(err error) (int, string) {
	if errors.Is(err, services.ErrAdviceInFlight) {
		return http.StatusConflict, "ADVICE_IN_FLIGHT"
	}

	var adviceErr *services.AdviceError
	if !errors.As(err, &adviceErr) {
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
	switch adviceErr.Kind {
	case services.KindValidation:
		return http.StatusBadRequest, string(adviceErr.Kind)
	case services.KindConfiguration:
		return http.StatusServiceUnavailable, string(adviceErr.Kind)
	default:
		return http.StatusBadGateway, string(adviceErr.Kind)
	}
}
