package handlers

import (
	"log/slog"
	"marketplace-service/internal/models"
	"marketplace-service/internal/services"
	"marketplace-service/internal/utils"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
)

const apiPrefix = "/marketplace/api/v1"

type MarketplaceHandler struct {
	app *services.App
}

func NewMarketplaceHandler(app *services.App) *MarketplaceHandler {
	return &MarketplaceHandler{app: app}
}

func (h *MarketplaceHandler) Register(app *fiber.App) {
	gr := app.Group(apiPrefix)

	gr.Get("/state", h.GetState)
	gr.Post("/navigate", h.Navigate)
	gr.Get("/products", h.ListProducts)
	gr.Delete("/notice", h.DismissNotice)

	cartGr := gr.Group("/cart")
	cartGr.Post("/items", h.AddToCart)
	cartGr.Put("/items/:id", h.UpdateQuantity)
}

func (h *MarketplaceHandler) GetState(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.app.Snapshot()))
}

func (h *MarketplaceHandler) Navigate(c fiber.Ctx) error {
	var req models.NavigateRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse request body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	view, err := models.ParseView(req.View)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_VIEW", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.app.Navigate(view)))
}

// ListProducts filters by ?category= and ?q=.
func (h *MarketplaceHandler) ListProducts(c fiber.Ctx) error {
	category, err := models.ParseCategory(c.Query("category"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_CATEGORY", err.Error()))
	}

	products := h.app.Products(category, c.Query("q"))
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(products))
}

func (h *MarketplaceHandler) AddToCart(c fiber.Ctx) error {
	var req models.AddToCartRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse request body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	product, ok := h.app.Product(req.ProductID)
	if !ok {
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("PRODUCT_NOT_FOUND", "Product not found"))
	}

	snapshot := h.app.AddToCart(c.Context(), product)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(snapshot))
}

func (h *MarketplaceHandler) UpdateQuantity(c fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_ID", "Product id must be an integer"))
	}

	var req models.UpdateQuantityRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse request body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}
	if req.Quantity == nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "quantity is required"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.app.UpdateQuantity(productID, *req.Quantity)))
}

func (h *MarketplaceHandler) DismissNotice(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.app.DismissNotice()))
}
