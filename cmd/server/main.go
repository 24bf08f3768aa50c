package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymmanagement/gym/internal/config"
	"github.com/gymmanagement/gym/internal/database"
	"github.com/gymmanagement/gym/internal/server"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/internal/storage"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
)

func main() {
	logger.Init()

	cfg := config.Load()
	utils.ConfigureJWT(cfg.JWT.Secret, cfg.JWT.ExpirationHours)

	db, err := database.Connect(cfg.DB, cfg.Seed)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	var storageClient *storage.MinIOClient
	if cfg.MinIO.Enabled {
		storageClient, err = storage.NewMinIOClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("minio initialization failed: %v", err)
		}
		if err := storageClient.EnsureBucket(context.Background()); err != nil {
			log.Fatalf("failed ensuring minio bucket: %v", err)
		}
	}

	progress := services.NewProgressService(db, cfg.Progress.QueueSize)

	app := server.New(server.Dependencies{
		DB:          db,
		Progress:    progress,
		Storage:     storageClient,
		CORSOrigins: cfg.Server.CORSOrigins,
		BodyLimitMB: cfg.Server.BodyLimitMB,
		Metrics:     true,
	})

	listenAddr := fmt.Sprintf(":%s", cfg.Server.Port)

	logger.Info("server_starting", map[string]interface{}{
		"port":          cfg.Server.Port,
		"address":       listenAddr,
		"body_limit":    fmt.Sprintf("%dMB", cfg.Server.BodyLimitMB),
		"database_type": cfg.DB.Type,
		"image_storage": cfg.MinIO.Enabled,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(listenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("shutting down server due to signal: %s", sig)
		shutdownDone := make(chan struct{})
		go func() {
			_ = app.Shutdown()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(10 * time.Second):
			log.Print("forced shutdown timeout reached")
		}
	case err := <-errCh:
		if err != nil {
			progress.Close()
			log.Fatalf("server error: %v", err)
		}
	}

	// flush queued progress snapshots before the database goes away
	progress.Close()
}
