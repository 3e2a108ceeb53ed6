package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bookapi/internal/handlers"
	"bookapi/internal/middleware"
	"bookapi/internal/models"
	"bookapi/internal/repositories"
	"bookapi/internal/services"
	"bookapi/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=password dbname=book_management port=5432 sslmode=disable")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// --- Database ---
	db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Book{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, catalog event publishing disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	bookRepo := repositories.NewGORMBookRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	bookService := services.NewBookService(bookRepo, mqClient)
	reviewService := services.NewReviewService(reviewRepo, bookRepo, mqClient)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	bookHandler := handlers.NewBookHandler(bookService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// --- Fiber app and routes ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public routes: /register and /login
	authHandler.RegisterRoutes(app)

	// Every resource route sits behind the bearer-token gate.
	protected := app.Group("", middleware.AuthRequired(authService))
	bookHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(protected)

	// --- Catalog event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received catalog event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumeErr := mqClient.ConsumeCatalogEvents(handler); consumeErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumeErr)
			}
		}()
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
