package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"portal/internal/app"
	"portal/internal/config"
	"portal/internal/database"
	"portal/internal/services"
	"portal/internal/storage"
	"portal/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Object Storage ---
	gateway, err := newGateway(context.Background(), cfg.S3)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// --- Initialize RabbitMQ Client ---
	// Activity events are optional; the portal runs without a broker.
	var publisher services.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, activity events will not be published: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	application := app.New(cfg, app.Dependencies{
		DB:        db,
		Storage:   gateway,
		Publisher: publisher,
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := application.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server gracefully stopped")
}

// newGateway connects to the configured bucket. Without a bucket images are
// kept in memory, which only suits development.
func newGateway(ctx context.Context, cfg config.S3Config) (storage.Gateway, error) {
	if cfg.Bucket == "" {
		log.Println("Warning: S3_BUCKET is not set, storing uploads in memory")
		return storage.NewMemoryGateway(), nil
	}
	return storage.NewS3Gateway(ctx, storage.S3Options{
		Endpoint:     cfg.Endpoint,
		Region:       cfg.Region,
		Bucket:       cfg.Bucket,
		AccessKey:    cfg.AccessKey,
		SecretKey:    cfg.SecretKey,
		PublicRead:   cfg.PublicRead,
		UsePathStyle: cfg.UsePathStyle,
	})
}
