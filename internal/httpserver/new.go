package httpserver

import (
	"errors"

	"fluency-srv/config"
	"fluency-srv/pkg/discord"
	"fluency-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	mongoClient *mongo.Client
	mongoDB     *mongo.Database

	// Service Configuration
	config *config.Config

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	MongoClient *mongo.Client

	// Service Configuration
	Config *config.Config

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mongoClient: cfg.MongoClient,
		config:      cfg.Config,
		discord:     cfg.Discord,
	}
	if cfg.MongoClient != nil && cfg.Config != nil {
		srv.mongoDB = cfg.MongoClient.Database(cfg.Config.Mongo.Database)
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mongoClient == nil {
		return errors.New("mongoClient is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	// discord is optional

	return nil
}
