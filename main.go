package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/premier-auto/site/catalog"
	"github.com/premier-auto/site/config"
	"github.com/premier-auto/site/db"
	h "github.com/premier-auto/site/handlers"
	"github.com/premier-auto/site/listing"
	"github.com/premier-auto/site/logging"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("error loading config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log, os.Stdout)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	if err := db.Init(ctx, cfg.Database.URL, log); err != nil {
		log.Error("error initializing database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx, db.Get(), db.CurrentDialect(), log); err != nil {
		log.Error("error applying schema", "error", err)
		os.Exit(1)
	}

	store := listing.NewStore(db.Get())

	// Initialize filter option cache
	options, err := listing.NewOptions(store, logging.Component(log, "options"))
	if err != nil {
		log.Error("failed to initialize options cache", "error", err)
		os.Exit(1)
	}
	defer options.Close()

	registry := catalog.NewRegistry(cfg.Session.Expiration)
	go registry.Run(ctx, time.Minute, logging.Component(log, "registry"))

	handler := h.New(h.Deps{
		Config:   cfg,
		Store:    store,
		Options:  options,
		Registry: registry,
		Ping:     db.Ping,
		Logger:   log,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler,
		ReadTimeout:  config.RequestTimeout,
		WriteTimeout: config.RequestTimeout,
	})

	app.Use(recover.New())

	// Add rate limiter
	app.Use(h.GlobalRateLimiter(cfg.Server))

	// Add logger middleware
	app.Use(logger.New())

	// Static files
	app.Static("/", cfg.Server.StaticDir)

	handler.Register(app)

	go func() {
		<-ctx.Done()
		log.Info("shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("error during shutdown", "error", err)
		}
	}()

	log.Info("starting server", "port", cfg.Server.Port, "dealer", cfg.Dealer.Name)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
