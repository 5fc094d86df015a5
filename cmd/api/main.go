package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/repuestos-analytics/internal/application/analytics"
	"github.com/jhoicas/repuestos-analytics/internal/domain/forecast"
	infracache "github.com/jhoicas/repuestos-analytics/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/repuestos-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/repuestos-analytics/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/repuestos-analytics/internal/interfaces/http"
	"github.com/jhoicas/repuestos-analytics/pkg/config"
	"github.com/jhoicas/repuestos-analytics/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	partRepo := postgres.NewPartRepository(pool)
	lookback := time.Duration(cfg.Analytics.HistoryMonths) * 30 * 24 * time.Hour
	usageRepo := postgres.NewUsageRepository(pool, lookback)

	resultCache, err := infracache.New(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de caché Redis")
	}
	if closer, ok := resultCache.(io.Closer); ok {
		defer closer.Close()
	}

	engine := forecast.NewEngine(analytics.EngineConfig(cfg.Analytics))
	predictiveUC := analytics.NewPredictiveUseCase(
		partRepo, usageRepo, engine, log,
		analytics.WithCache(resultCache),
		analytics.WithFetchWorkers(cfg.Analytics.FetchWorkers),
		// PDF: lista de compra sugerida para preparar órdenes
		analytics.WithReportGenerator(infrapdf.NewMarotoReportGenerator("Recomendaciones de compra")),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Repuestos Analytics API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Analytics: predictiveUC,
		Logger:    log,
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
