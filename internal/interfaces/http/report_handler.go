package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/application/report"
)

// ReportHandler serve os relatórios exportados (PDF, XLSX, CSV).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CorrectionsPDF GET /api/reports/corrections.pdf?client_id=
func (h *ReportHandler) CorrectionsPDF(c *fiber.Ctx) error {
	data, err := h.uc.CorrectionsPDF(c.Context(), c.Query("client_id"))
	if err != nil {
		return reportError(c, err)
	}
	return sendFile(c, data, "application/pdf", "atualizacoes.pdf")
}

// CorrectionsXLSX GET /api/reports/corrections.xlsx?client_id=
func (h *ReportHandler) CorrectionsXLSX(c *fiber.Ctx) error {
	data, err := h.uc.CorrectionsXLSX(c.Context(), c.Query("client_id"))
	if err != nil {
		return reportError(c, err)
	}
	return sendFile(c, data,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "atualizacoes.xlsx")
}

// CorrectionsCSV GET /api/reports/corrections.csv?client_id=
func (h *ReportHandler) CorrectionsCSV(c *fiber.Ctx) error {
	data, err := h.uc.CorrectionsCSV(c.Context(), c.Query("client_id"))
	if err != nil {
		return reportError(c, err)
	}
	return sendFile(c, data, "text/csv; charset=utf-8", "atualizacoes.csv")
}

// CreditsXLSX GET /api/reports/credits.xlsx
func (h *ReportHandler) CreditsXLSX(c *fiber.Ctx) error {
	data, err := h.uc.CreditsXLSX(c.Context())
	if err != nil {
		return reportError(c, err)
	}
	return sendFile(c, data,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "creditos.xlsx")
}

// CreditsCSV GET /api/reports/credits.csv
func (h *ReportHandler) CreditsCSV(c *fiber.Ctx) error {
	data, err := h.uc.CreditsCSV(c.Context())
	if err != nil {
		return reportError(c, err)
	}
	return sendFile(c, data, "text/csv; charset=utf-8", "creditos.csv")
}

func sendFile(c *fiber.Ctx, data []byte, contentType, filename string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func reportError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
