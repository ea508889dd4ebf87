package main

import (
	"context"
	"fmt"

	"tubeline-api/config"
	configMinio "tubeline-api/config/minio"
	"tubeline-api/config/postgre"
	configRedis "tubeline-api/config/redis"
	"tubeline-api/internal/httpserver"
	"tubeline-api/pkg/encrypter"
	"tubeline-api/pkg/log"
	"tubeline-api/pkg/scope"
	"tubeline-api/pkg/whatsapp"
)

// @Name Tubeline API
// @description This is the API documentation for the Tubeline video production backend.
// @version 1
// @host localhost:8080
// @schemes http
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// Initialize WhatsApp client for hand-off notifications and bug reports
	waClient, err := whatsapp.New(logger, whatsapp.Credentials{
		PhoneNumberID: cfg.WhatsApp.PhoneNumberID,
		AccessToken:   cfg.WhatsApp.AccessToken,
		ReportTo:      cfg.WhatsApp.ReportTo,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize WhatsApp client: ", err)
		return
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		DB:         postgresDB,
		Redis:      redisClient,
		MinIO:      minioClient,
		JWTManager: scope.New(cfg.JWT.SecretKey),
		WhatsApp:   waClient,
		Encrypter:  encrypter.New(cfg.Encrypter.Key),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
