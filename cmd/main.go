package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard/internal/api"
	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/services"
	"jobboard/internal/utils/logger"

	"github.com/joho/godotenv"
)

func main() {
	console := logger.New("jobboard")

	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		console.Info("No .env file found, skipping environment variable loading")
	} else {
		console.Info("Loading environment variables from .env file")
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := db.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			console.Warn("Failed to close database connection: %v", err)
		}
	}()

	switch cfg.Storage.Provider {
	case "s3":
		s3Service, err := services.NewS3Service(cfg.Storage.S3)
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		services.RegisterStorage(s3Service)
	default:
		localService, err := services.NewLocalService(cfg.Storage, cfg.Server.PublicURL)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		services.RegisterStorage(localService)
	}

	server := api.NewServer(cfg, db.GetDB())

	go func() {
		if err := server.Start(); err != nil {
			console.Info("Server stopped: %v", err)
		}
	}()

	console.Success("Server started on %s:%d", cfg.Server.Host, cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	console.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	console.Success("Server exited gracefully")
}
