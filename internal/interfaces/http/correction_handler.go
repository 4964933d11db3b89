package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/application/usecase"
	"github.com/gestorfiscal/creditos-api/internal/domain"
	"github.com/gestorfiscal/creditos-api/internal/domain/selic"
)

// CorrectionHandler trata o cálculo de atualização monetária e seu histórico.
type CorrectionHandler struct {
	uc *usecase.CorrectionUseCase
}

// NewCorrectionHandler constrói o handler.
func NewCorrectionHandler(uc *usecase.CorrectionUseCase) *CorrectionHandler {
	return &CorrectionHandler{uc: uc}
}

// Calculate POST /api/corrections/calculate
func (h *CorrectionHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateCorrectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.uc.Calculate(c.Context(), in)
	if err != nil {
		return correctionError(c, err)
	}
	return c.JSON(result)
}

// CalculateBulk POST /api/corrections/calculate-bulk
//
// Itens inválidos não derrubam o lote: entram em errors com o índice original.
func (h *CorrectionHandler) CalculateBulk(c *fiber.Ctx) error {
	var in dto.BulkCorrectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.uc.CalculateBulk(c.Context(), in)
	if err != nil {
		return correctionError(c, err)
	}
	return c.JSON(result)
}

// History GET /api/corrections?client_id=&limit=&offset=
func (h *CorrectionHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	list, err := h.uc.History(c.Context(), c.Query("client_id"), page)
	if err != nil {
		return correctionError(c, err)
	}
	return c.JSON(list)
}

// HistoryByCredit GET /api/credits/:id/corrections
func (h *CorrectionHandler) HistoryByCredit(c *fiber.Ctx) error {
	list, err := h.uc.HistoryByCredit(c.Context(), c.Params("id"))
	if err != nil {
		return correctionError(c, err)
	}
	return c.JSON(list)
}

// correctionError mapeia os erros do motor de atualização para códigos HTTP.
func correctionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, selic.ErrInvalidValue):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VALUE", Message: "valor deve ser positivo"})
	case errors.Is(err, selic.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "data base inválida (use DD/MM/AAAA ou ISO 8601)"})
	case errors.Is(err, selic.ErrFutureDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FUTURE_DATE", Message: "data base não pode ser futura"})
	case errors.Is(err, selic.ErrPeriodTooShort):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PERIOD_TOO_SHORT", Message: "é preciso ao menos um mês inteiro decorrido"})
	case errors.Is(err, selic.ErrEmptyTable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_RATE_TABLE", Message: "série SELIC vazia; importe ou cadastre as taxas"})
	case errors.Is(err, domain.ErrMissingID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id do crédito é obrigatório"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
