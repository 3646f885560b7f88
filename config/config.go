package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// MongoDB - Report store
	Mongo MongoConfig

	// S3 Relay - Object storage gateway for audio payloads
	S3Relay S3RelayConfig

	// SAS - Speech-analysis scoring service
	SAS SASConfig

	// CORS - Allowed browser origins
	CORS CORSConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// MongoConfig is the configuration for MongoDB
type MongoConfig struct {
	URI      string
	Database string
}

// S3RelayConfig is the configuration for the object-storage relay
type S3RelayConfig struct {
	URL     string
	Timeout int // in seconds
}

// SASConfig is the configuration for the scoring service. APIKey may be
// empty at startup; its absence is rejected per request, not at boot.
type SASConfig struct {
	URL     string
	APIKey  string
	Timeout int // in seconds
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("fluency-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/fluency/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// MongoDB
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	cfg.Mongo.Database = viper.GetString("mongo.database")

	// S3 Relay
	cfg.S3Relay.URL = viper.GetString("s3relay.url")
	cfg.S3Relay.Timeout = viper.GetInt("s3relay.timeout")

	// SAS
	cfg.SAS.URL = viper.GetString("sas.url")
	cfg.SAS.APIKey = viper.GetString("sas.api_key")
	cfg.SAS.Timeout = viper.GetInt("sas.timeout")

	// CORS
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// MongoDB
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "fluency")

	// S3 Relay
	viper.SetDefault("s3relay.timeout", 60)

	// SAS
	viper.SetDefault("sas.timeout", 30)

	// CORS
	viper.SetDefault("cors.allowed_origins", []string{"https://iitb-dap.netlify.app"})
}

func validate(cfg *Config) error {
	if cfg.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if cfg.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}

	if cfg.S3Relay.URL == "" {
		return fmt.Errorf("s3relay.url is required")
	}

	if cfg.SAS.URL == "" {
		return fmt.Errorf("sas.url is required")
	}
	// sas.api_key is deliberately not validated here: a missing key is
	// surfaced as a client error on generate-report, not a boot failure.

	return nil
}
