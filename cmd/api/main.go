package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/wsei-dev/university-records/internal/api/http"
	"github.com/wsei-dev/university-records/internal/api/http/handlers"
	"github.com/wsei-dev/university-records/internal/auth"
	"github.com/wsei-dev/university-records/internal/config"
	"github.com/wsei-dev/university-records/internal/events"
	"github.com/wsei-dev/university-records/internal/observability"
	"github.com/wsei-dev/university-records/internal/persistence"
	"github.com/wsei-dev/university-records/internal/repository"
	"github.com/wsei-dev/university-records/internal/service"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.NewStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	if err := persistence.RunMigrations(ctx, store.Handle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	if cfg.Store.SeedDemo {
		if err := persistence.SeedDemo(ctx, store.Handle(), logger); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	credentials, err := auth.NewCredentialStore(cfg.Auth.SeedUsers, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to build credential store", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Auth)
	gate := auth.NewGate(tokens, logger)

	dispatcher := events.NewInMemoryDispatcher()
	events.RegisterAuditLog(dispatcher, logger.Named("audit"))

	db := store.Handle()
	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	authService := service.NewAuthService(credentials, tokens, logger)
	studentService := service.NewStudentService(studentRepo, dispatcher)
	courseService := service.NewCourseService(courseRepo, dispatcher)
	enrollmentService := service.NewEnrollmentService(db, enrollmentRepo, dispatcher)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(db, metrics),
		Security:    handlers.NewSecurityHandler(authService),
		Students:    handlers.NewStudentsHandler(studentService),
		Courses:     handlers.NewCoursesHandler(courseService),
		Enrollments: handlers.NewEnrollmentsHandler(enrollmentService),
		Gate:        gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
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
