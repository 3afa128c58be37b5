package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"master-data-barang/config"
	_ "master-data-barang/docs" // Swagger docs
	"master-data-barang/internal/httpserver"
	"master-data-barang/pkg/filestore"
	"master-data-barang/pkg/log"
	"master-data-barang/pkg/mongodb"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// @title       Master Data Barang API
// @description Backend for registering master item data: multipart item creation with image upload, MongoDB persistence, and a connectivity diagnostics endpoint.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Master Data Barang backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Document store (optional: the server still serves without it, and
	// GET /test reports the store as unavailable)
	var db *mongo.Database
	if cfg.Mongo.URI != "" {
		client, dbErr := mongodb.Connect(ctx, cfg.Mongo.URI)
		if dbErr != nil {
			logger.Warnf(ctx, "MongoDB not available (optional): %v", dbErr)
		} else {
			db = client.Database(cfg.Mongo.Database)
			logger.Infof(ctx, "MongoDB connected, database: %s", cfg.Mongo.Database)
			defer func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warnf(ctx, "MongoDB disconnect: %v", err)
				}
			}()
		}
	} else {
		logger.Warn(ctx, "DATABASE_URL not set, running without a database")
	}

	// 4. File sink for uploaded images
	files, err := filestore.New(filestore.Config{
		Dir:          cfg.Upload.Dir,
		PublicPrefix: cfg.Upload.PublicPrefix,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize filestore: ", err)
		return
	}
	logger.Infof(ctx, "Upload directory: %s", cfg.Upload.Dir)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Database:        db,
		Filestore:       files,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
