package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brotherhood/barbershop_backend/internal/application"
	"github.com/brotherhood/barbershop_backend/internal/config"
	"github.com/brotherhood/barbershop_backend/internal/domain"
	"github.com/brotherhood/barbershop_backend/internal/email"
	"github.com/brotherhood/barbershop_backend/internal/infrastructure/repository"
	handlers "github.com/brotherhood/barbershop_backend/internal/interfaces/http"
	services "github.com/brotherhood/barbershop_backend/internal/service"
	"github.com/brotherhood/barbershop_backend/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatalf("Error loading config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		logger.Fatalf("Error initializing logger: %v", err)
	}

	app := fiber.New(handlers.AppConfig(cfg.Server))

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       86400,
	}))

	// Gallery
	galleryRepo, err := newGalleryRepository(cfg.Gallery)
	if err != nil {
		logger.Fatalf("Error initializing gallery source: %v", err)
	}
	galleryCache := application.NewGalleryCache(cfg.Gallery.CacheTTL)
	galleryService := application.NewGalleryService(galleryRepo, galleryCache, cfg.Gallery.PublicPrefix)
	galleryHandler := handlers.NewGalleryHandler(galleryService)

	// Booking. A missing or broken relay config is reported per request, not at startup.
	var sender email.Sender
	if missing := cfg.SMTP.MissingKeys(); len(missing) > 0 {
		logger.Warnf("Booking emails disabled, missing configuration: %v", missing)
	} else {
		client, err := email.NewClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)
		if err != nil {
			logger.Errorf("Email client initialization failed: %v", err)
		} else {
			sender = client
		}
	}
	bookingService := application.NewBookingService(cfg.SMTP, sender)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Catalog
	catalogService := application.NewCatalogService(repository.NewCatalogRepository())
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	healthHandler := handlers.NewHealthHandler()

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)
	api.Get("/gallery", galleryHandler.GetImages)

	booking := api.Group("/booking")
	if cfg.RateLimit.Enabled {
		if cfg.Server.ProxyHeader == "" {
			logger.Warnf("Booking rate limit keyed on the peer address; set PROXY_HEADER when running behind a proxy")
		}
		limiter := application.NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.Max)
		defer limiter.Stop()
		booking.Post("/", handlers.RateLimit(limiter), bookingHandler.CreateBooking)
	} else {
		booking.Post("/", bookingHandler.CreateBooking)
	}
	booking.Get("/slots", bookingHandler.GetSlots)

	api.Get("/services", catalogHandler.GetServices)
	api.Get("/faqs", catalogHandler.GetFAQs)
	api.Get("/business", catalogHandler.GetBusiness)

	if cfg.Gallery.Source == config.GallerySourceDir {
		app.Static(cfg.Gallery.PublicPrefix, cfg.Gallery.Dir, fiber.Static{
			MaxAge: int((24 * time.Hour).Seconds()),
		})
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server gracefully...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited")
}

func newGalleryRepository(cfg config.GalleryConfig) (domain.GalleryRepository, error) {
	if cfg.Source == config.GallerySourceS3 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s3Gallery, err := services.NewS3GalleryService(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region)
		if err != nil {
			return nil, err
		}
		return s3Gallery, nil
	}
	return repository.NewGalleryRepository(cfg.Dir), nil
}
