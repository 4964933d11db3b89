package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorfiscal/creditos-api/internal/application/auth"
	"github.com/gestorfiscal/creditos-api/internal/application/report"
	"github.com/gestorfiscal/creditos-api/internal/application/usecase"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClientUC     *usecase.ClientUseCase
	CreditUC     *usecase.CreditUseCase
	CorrectionUC *usecase.CorrectionUseCase
	SelicUC      *usecase.SelicUseCase
	InvoiceUC    *usecase.InvoiceUseCase
	DashboardUC  *usecase.DashboardUseCase
	ReportUC     *report.UseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// analistas e admins podem alterar dados; consulta é somente leitura
	writer := RequireRole(entity.RoleAdmin, entity.RoleAnalista)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", writer, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", writer, clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)

	// Tax credits (protegido)
	credits := protected.Group("/credits")
	creditHandler := NewCreditHandler(deps.CreditUC)
	correctionHandler := NewCorrectionHandler(deps.CorrectionUC)
	credits.Post("/", writer, creditHandler.Create)
	credits.Get("/", creditHandler.List)
	credits.Get("/:id", creditHandler.GetByID)
	credits.Put("/:id", writer, creditHandler.Update)
	credits.Patch("/:id/status", writer, creditHandler.ChangeStatus)
	credits.Delete("/:id", RequireRole(entity.RoleAdmin), creditHandler.Delete)
	credits.Get("/:id/corrections", correctionHandler.HistoryByCredit)

	// Monetary corrections (protegido)
	corrections := protected.Group("/corrections")
	corrections.Post("/calculate", writer, correctionHandler.Calculate)
	corrections.Post("/calculate-bulk", writer, correctionHandler.CalculateBulk)
	corrections.Get("/", correctionHandler.History)

	// SELIC rates (protegido; escrita só admin)
	selicGroup := protected.Group("/selic")
	selicHandler := NewSelicHandler(deps.SelicUC)
	selicGroup.Get("/rates", selicHandler.List)
	selicGroup.Put("/rates", RequireRole(entity.RoleAdmin), selicHandler.Upsert)
	selicGroup.Post("/rates/sync", RequireRole(entity.RoleAdmin), selicHandler.Sync)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", writer, invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", writer, invoiceHandler.Update)
	invoices.Post("/:id/pay", writer, invoiceHandler.Pay)
	invoices.Delete("/:id", RequireRole(entity.RoleAdmin), invoiceHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/corrections.pdf", reportHandler.CorrectionsPDF)
	reports.Get("/corrections.xlsx", reportHandler.CorrectionsXLSX)
	reports.Get("/corrections.csv", reportHandler.CorrectionsCSV)
	reports.Get("/credits.xlsx", reportHandler.CreditsXLSX)
	reports.Get("/credits.csv", reportHandler.CreditsCSV)
}
