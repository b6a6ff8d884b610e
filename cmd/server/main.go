package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/preferences"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
	"finance-tracker/internal/tracker"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	log := setupLogging(cfg)
	log.Info("finance-tracker starting")

	db, err := database.Initialize(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	templateRepo := repositories.NewTemplateRepository(db.DB)

	prefs := preferences.NewStore(cfg.Database.DataDir)

	trk := tracker.New(
		userRepo, categoryRepo, transactionRepo, templateRepo,
		prefs, log,
		tracker.WithMetrics(services.NewPrometheusMetrics()),
	)
	if err := trk.Bootstrap(); err != nil {
		log.WithError(err).Fatal("bootstrap failed")
	}

	seeder := services.NewSampleDataSeeder(userRepo, categoryRepo, transactionRepo, log)
	if cfg.SeedSampleData {
		if err := seeder.Seed(2, 30); err != nil {
			log.WithError(err).Error("sample data seeding failed")
		}
	}

	e := newServer(cfg, log, db, trk, seeder,
		userRepo, categoryRepo, transactionRepo, templateRepo)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		log.WithField("addr", addr).Info("http server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
}

func newServer(
	cfg *config.Config,
	log *logrus.Logger,
	db *database.DB,
	trk *tracker.Tracker,
	seeder *services.SampleDataSeeder,
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	templateRepo repositories.TemplateRepositoryInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Validator = handlers.NewRequestValidator(validation.GetValidator().GetValidate())
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.NewRateLimiter(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	).Middleware())

	registry := &handlers.Registry{
		Users:        handlers.NewUserHandler(trk, userRepo),
		Categories:   handlers.NewCategoryHandler(trk, categoryRepo),
		Transactions: handlers.NewTransactionHandler(trk, transactionRepo, categoryRepo),
		Templates:    handlers.NewTemplateHandler(trk, templateRepo, categoryRepo),
		View:         handlers.NewViewHandler(trk, categoryRepo),
		Health:       handlers.NewHealthCheckHandler(db),
	}
	if cfg.IsDevelopment() {
		registry.Dev = handlers.NewDevHandler(seeder, cfg.Environment)
	}

	handlers.RegisterRoutes(e, registry)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func setupLogging(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
