package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"docgen/internal/config"
	"docgen/internal/database"
	"docgen/internal/database/migration"
	"docgen/internal/document"
	handlers "docgen/internal/http/handler"
	"docgen/internal/http/middleware"
	"docgen/internal/logger"
	"docgen/internal/otel"
	"docgen/internal/render"
	"docgen/internal/repository"
	"docgen/internal/repository/postgres"
	"docgen/internal/service"
	"docgen/internal/storage"
)

// @title Document Generation API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.Stdout(cfg.Location(), cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server_exited", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) error {
	shutdownTracing, tracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := service.NewMetrics(reg)
	if err != nil {
		return err
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	// The archive (Postgres + MinIO) is optional; generation works without it.
	var (
		db       *sql.DB
		objStore storage.Storage
		docRepo  repository.DocumentRepository
	)
	if cfg.ArchiveEnabled() {
		db, err = database.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		reg.MustRegister(collectors.NewDBStatsCollector(db, database.ApplicationName))

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return err
		}

		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		docRepo = postgres.NewDocumentPostgres(db)
	} else {
		log.Info("archive_disabled")
	}

	docSvc := service.NewDocumentService(objStore, docRepo, service.Options{
		Render: render.Options{
			Author:        cfg.PDF.Author,
			Creator:       cfg.PDF.Creator,
			OwnerPassword: cfg.PDF.OwnerPassword,
		},
		Logger:  log,
		Metrics: metrics,
	})

	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.BodyLimitBytes,
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	// Panics become unclassified errors and reach the error handler.
	app.Use(recover.New())
	app.Use(middleware.Tracing(tracing))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       db,
		Service:  docSvc,
		Registry: document.Default(),
		Gatherer: reg,
		Logger:   log,
	})

	addr := ":" + cfg.Port

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server_listening", zap.String("addr", addr), zap.Bool("archive", cfg.ArchiveEnabled()))
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("server_shutting_down")
		return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
