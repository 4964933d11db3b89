package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestorfiscal/creditos-api/internal/application/auth"
	appreport "github.com/gestorfiscal/creditos-api/internal/application/report"
	"github.com/gestorfiscal/creditos-api/internal/application/usecase"
	"github.com/gestorfiscal/creditos-api/internal/infrastructure/bcb"
	"github.com/gestorfiscal/creditos-api/internal/infrastructure/postgres"
	infrareport "github.com/gestorfiscal/creditos-api/internal/infrastructure/report"
	httpRouter "github.com/gestorfiscal/creditos-api/internal/interfaces/http"
	"github.com/gestorfiscal/creditos-api/pkg/config"
	"github.com/gestorfiscal/creditos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	creditRepo := postgres.NewTaxCreditRepository(pool)
	corrRepo := postgres.NewCorrectionRepository(pool)
	rateRepo := postgres.NewSelicRateRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rateFeed := bcb.NewClient(cfg.BCB)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	creditUC := usecase.NewCreditUseCase(creditRepo)
	correctionUC := usecase.NewCorrectionUseCase(rateRepo, corrRepo, txRunner, log)
	selicUC := usecase.NewSelicUseCase(rateRepo, rateFeed, log)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo)
	dashboardUC := usecase.NewDashboardUseCase(creditRepo, corrRepo)
	reportUC := appreport.NewUseCase(
		corrRepo, creditRepo,
		infrareport.NewMarotoPDFGenerator(),
		infrareport.NewExcelExporter(),
		infrareport.NewCSVWriter(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor Fiscal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClientUC:     clientUC,
		CreditUC:     creditUC,
		CorrectionUC: correctionUC,
		SelicUC:      selicUC,
		InvoiceUC:    invoiceUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
