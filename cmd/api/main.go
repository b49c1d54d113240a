package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"devcamper/docs"
	"devcamper/internal/config"
	"devcamper/internal/database"
	"devcamper/internal/database/migration"
	"devcamper/internal/geocoder"
	handlers "devcamper/internal/http/handler"
	"devcamper/internal/http/middleware"
	"devcamper/internal/logging"
	"devcamper/internal/otel"
	"devcamper/internal/repository/postgres"
	"devcamper/internal/service"
	"devcamper/internal/storage"
)

// @title DevCamper API
// @version 1.0
// @description Bootcamp directory with courses, radius search and photo uploads.
// @BasePath /api/v1
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	log := logging.With("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	store, err := storage.New(cfg.Upload, cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize photo storage")
	}

	provider, err := geocoder.New(cfg.Geocoder)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize geocoder")
	}
	gc, err := geocoder.NewBreaker(provider, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register geocoder metrics")
	}

	bootcampRepo := postgres.NewBootcampPostgres(db)
	courseRepo := postgres.NewCoursePostgres(db)
	bootcampSvc := service.NewBootcampService(bootcampRepo, gc, store, cfg.Upload.MaxBytes)
	courseSvc := service.NewCourseService(courseRepo, bootcampRepo)

	app := fiber.New(fiber.Config{
		AppName:      "devcamper",
		ErrorHandler: handlers.ErrorHandler(cfg.Upload.MaxBytes),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    handlers.BodyLimit(cfg.Upload.MaxBytes),
	})

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())
	// Logger renders errors itself so the access log carries the final status.
	app.Use(middleware.Logger())
	app.Use(middleware.Deadline(cfg.RequestTimeout))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, gc, bootcampSvc, courseSvc)

	// Swagger UI with dynamic host and scheme; not exposed in production
	if !cfg.IsProduction() {
		app.Get("/swagger/*", func(c *fiber.Ctx) error {
			scheme := c.Protocol()
			if proto := c.Get("X-Forwarded-Proto"); proto != "" {
				scheme = strings.Split(proto, ",")[0]
			}

			docs.SwaggerInfo.Host = c.Get("Host")
			docs.SwaggerInfo.Schemes = []string{scheme}

			return swagger.HandlerDefault(c)
		})
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
