package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pinpost/internal/auth"
	"pinpost/internal/config"
	"pinpost/internal/handlers"
	"pinpost/internal/imagesource"
	"pinpost/internal/middleware"
	"pinpost/internal/models"
	"pinpost/internal/repositories"
	"pinpost/internal/services"
	"pinpost/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Storage ---
	userRepo, imageRepo, threadRepo, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Optional event publishing ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- Services ---
	source := imagesource.NewPicsum(cfg.ImageSourceBaseURL, cfg.ImageSourceMaxID, cfg.ImageWidth, cfg.ImageHeight)
	authService := services.NewAuthService(userRepo)
	imageService := services.NewImageService(imageRepo, source, mqClient)
	threadService := services.NewThreadService(threadRepo, imageRepo, mqClient)

	// --- Identity resolution ---
	var resolver auth.PrincipalResolver
	switch cfg.AuthMode {
	case "token":
		if cfg.JWTSecret == "" {
			log.Fatal("AUTH_MODE=token requires JWT_SECRET")
		}
		resolver = auth.NewTokenResolver(userRepo, cfg.JWTSecret)
	default:
		resolver = auth.NewHeaderResolver(userRepo)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, resolver)
	imageHandler := handlers.NewImageHandler(imageService)
	threadHandler := handlers.NewThreadHandler(threadService)

	app := fiber.New()
	app.Use(logger.New())

	authHandler.RegisterPublicRoutes(app)

	protected := app.Group("", middleware.Identity(resolver))
	authHandler.RegisterProtectedRoutes(protected)
	imageHandler.RegisterRoutes(protected)
	threadHandler.RegisterRoutes(protected)

	// --- Optional log-only event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting annotation event consumer...")
			consumeErr := mqClient.ConsumeAnnotationEvents(func(msg amqp.Delivery) error {
				log.Printf("Annotation event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			})
			if consumeErr != nil {
				log.Printf("Annotation event consumer stopped: %v", consumeErr)
			}
		}()
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on %s (storage=%s, auth=%s)", cfg.AppPort, cfg.StorageDriver, cfg.AuthMode)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if listenErr := app.Listen(cfg.AppPort); listenErr != nil {
			log.Fatalf("Server failed to start: %v", listenErr)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// buildRepositories selects the storage backend. With "memory" state lives
// only as long as the process; any other unrecognized driver is an error so a
// typo never silently downgrades to in-memory storage.
func buildRepositories(cfg config.Config) (repositories.UserRepository, repositories.ImageRepository, repositories.ThreadRepository, error) {
	switch cfg.StorageDriver {
	case "memory":
		store := repositories.NewMemoryStore()
		return store.Users(), store.Images(), store.Threads(), nil
	case "sqlite", "postgres":
		var dialector gorm.Dialector
		if cfg.StorageDriver == "postgres" {
			dialector = postgres.Open(cfg.DatabaseDSN)
		} else {
			dialector = sqlite.Open(cfg.DatabaseDSN)
		}

		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.AutoMigrate(&models.User{}, &models.Image{}, &models.Thread{}); err != nil {
			return nil, nil, nil, err
		}
		return repositories.NewGORMUserRepository(db),
			repositories.NewGORMImageRepository(db),
			repositories.NewGORMThreadRepository(db),
			nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q (expected memory, sqlite or postgres)", cfg.StorageDriver)
	}
}
