package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/application/usecase"
	"github.com/gestorfiscal/creditos-api/internal/domain"
)

// SelicHandler administra a série mensal SELIC.
type SelicHandler struct {
	uc *usecase.SelicUseCase
}

// NewSelicHandler constrói o handler.
func NewSelicHandler(uc *usecase.SelicUseCase) *SelicHandler {
	return &SelicHandler{uc: uc}
}

// List GET /api/selic/rates
func (h *SelicHandler) List(c *fiber.Ctx) error {
	rates, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rates)
}

// Upsert PUT /api/selic/rates
func (h *SelicHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertRatesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Upsert(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sync POST /api/selic/rates/sync — importa a série do feed do Banco Central.
func (h *SelicHandler) Sync(c *fiber.Ctx) error {
	result, err := h.uc.Sync(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FEED_UNAVAILABLE", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "FEED_ERROR", Message: err.Error()})
	}
	return c.JSON(result)
}
