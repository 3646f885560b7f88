package main

import (
	"context"
	"fmt"

	"fluency-srv/config"
	configMongo "fluency-srv/config/mongo"
	_ "fluency-srv/docs" // Import swagger docs
	"fluency-srv/internal/httpserver"
	"fluency-srv/pkg/discord"
	"fluency-srv/pkg/log"
)

// @title       Fluency Assessment Service API
// @description Oral-reading-fluency report service API documentation.
// @version     1
// @schemes     https
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize MongoDB. The store is the only collaborator whose
	// absence is fatal to the process.
	ctx := context.Background()
	mongoClient, err := configMongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer func() { _ = configMongo.Disconnect(ctx, mongoClient) }()
	logger.Infof(ctx, "MongoDB connected successfully, database %q", cfg.Mongo.Database)

	// 4. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		MongoClient: mongoClient,
		Config:      cfg,
		Discord:     discordClient,
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
