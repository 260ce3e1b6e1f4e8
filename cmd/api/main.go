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

	"github.com/jhoicas/pos-movil-api/internal/application/auth"
	"github.com/jhoicas/pos-movil-api/internal/application/catalog"
	"github.com/jhoicas/pos-movil-api/internal/application/inventory"
	"github.com/jhoicas/pos-movil-api/internal/application/orders"
	"github.com/jhoicas/pos-movil-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-movil-api/internal/interfaces/http"
	"github.com/jhoicas/pos-movil-api/pkg/config"
	"github.com/jhoicas/pos-movil-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	deviceRepo := postgres.NewDeviceRepository(pool)
	optionRepo := postgres.NewOptionRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(deviceRepo, optionRepo, auth.Config{
		Issuer:   cfg.Auth.Issuer,
		TokenTTL: time.Duration(cfg.Auth.TokenTTLDays) * 24 * time.Hour,
	})
	// Secreto de firma y clave maestra se materializan antes de servir tráfico.
	newMasterKey, err := authUC.EnsureSecrets()
	if err != nil {
		log.Fatal().Err(err).Msg("materializar secretos")
	}
	if newMasterKey != "" {
		// Única vez que la clave se muestra en claro; en BD solo queda el hash.
		log.Warn().Str("master_key", newMasterKey).
			Msg("clave maestra generada; anótala, no volverá a mostrarse")
	}

	adjustmentUC := inventory.NewAdjustmentUseCase(txRunner)
	stockUC := inventory.NewStockUpdateUseCase(productRepo)
	historyUC := inventory.NewHistoryUseCase(movementRepo)
	catalogUC := catalog.NewCatalogUseCase(productRepo)
	orderUC := orders.NewOrderUseCase(orderRepo)

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
		Title:    "POS Móvil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		AdjustmentUC: adjustmentUC,
		StockUC:      stockUC,
		HistoryUC:    historyUC,
		CatalogUC:    catalogUC,
		OrderUC:      orderUC,
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
