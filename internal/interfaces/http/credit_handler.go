package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/application/usecase"
	"github.com/gestorfiscal/creditos-api/internal/domain"
)

// CreditHandler trata as requisições HTTP de créditos tributários (protegido).
type CreditHandler struct {
	uc *usecase.CreditUseCase
}

// NewCreditHandler constrói o handler.
func NewCreditHandler(uc *usecase.CreditUseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// Create POST /api/credits
func (h *CreditHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	credit, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return creditError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(credit)
}

// GetByID GET /api/credits/:id
func (h *CreditHandler) GetByID(c *fiber.Ctx) error {
	credit, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return creditError(c, err)
	}
	return c.JSON(credit)
}

// List GET /api/credits?client_id=&status=&credit_type=&limit=&offset=
func (h *CreditHandler) List(c *fiber.Ctx) error {
	var in dto.CreditListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	list, err := h.uc.List(c.Context(), in)
	if err != nil {
		return creditError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/credits/:id
func (h *CreditHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	credit, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return creditError(c, err)
	}
	return c.JSON(credit)
}

// ChangeStatus PATCH /api/credits/:id/status
func (h *CreditHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	credit, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return creditError(c, err)
	}
	return c.JSON(credit)
}

// Delete DELETE /api/credits/:id
func (h *CreditHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return creditError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// creditError mapeia os erros de domínio de créditos para códigos HTTP.
func creditError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "crédito não encontrado"})
	case errors.Is(err, domain.ErrMissingID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id do crédito é obrigatório"})
	case errors.Is(err, domain.ErrMissingStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_STATUS", Message: "status é obrigatório"})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredit):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CREDIT_TYPE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
