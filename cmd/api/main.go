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

	"github.com/despachosur/facturacion-api/internal/application/analytics"
	"github.com/despachosur/facturacion-api/internal/application/auth"
	"github.com/despachosur/facturacion-api/internal/application/billing"
	infrapdf "github.com/despachosur/facturacion-api/internal/infrastructure/pdf"
	"github.com/despachosur/facturacion-api/internal/infrastructure/postgres"
	httpRouter "github.com/despachosur/facturacion-api/internal/interfaces/http"
	"github.com/despachosur/facturacion-api/pkg/config"
	"github.com/despachosur/facturacion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Bool("strict_enums", cfg.Billing.StrictEnums).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	prefacturaRepo := postgres.NewPrefacturaRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clienteUC := billing.NewClienteUseCase(clienteRepo)
	prefacturaUC := billing.NewPrefacturaUseCase(prefacturaRepo, clienteRepo, cfg.Billing.StrictEnums)
	facturaUC := billing.NewFacturaUseCase(facturaRepo, clienteRepo, prefacturaRepo, cfg.Billing.StrictEnums)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	// PDF: representación gráfica del comprobante con CAE
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(billing.Emisor{
		RazonSocial: cfg.Empresa.RazonSocial,
		CUIT:        cfg.Empresa.CUIT,
		Domicilio:   cfg.Empresa.Domicilio,
		Email:       cfg.Empresa.Email,
		Telefono:    cfg.Empresa.Telefono,
	})
	facturaPDFUC := billing.NewFacturaPDFUseCase(facturaRepo, clienteRepo, prefacturaRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturación API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClienteUC:    clienteUC,
		PrefacturaUC: prefacturaUC,
		FacturaUC:    facturaUC,
		FacturaPDF:   facturaPDFUC,
		DashboardUC:  dashboardUC,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
