package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wsei-dev/university-records/internal/admin"
	"github.com/wsei-dev/university-records/internal/config"
	"github.com/wsei-dev/university-records/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	client := admin.NewClient(cfg.Admin.APIBaseURL)
	sessions := admin.NewSessions(cfg.Admin)
	handlers := admin.NewHandlers(client, sessions, logger)

	app := fiber.New(fiber.Config{
		Views: admin.NewViewEngine(),
	})
	admin.RegisterRoutes(app, handlers)

	go func() {
		if err := app.Listen(cfg.Admin.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
