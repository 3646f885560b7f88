package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fluency-srv/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
)

var (
	instance *mongo.Client
	once     sync.Once
	mu       sync.RWMutex
	initErr  error // Stores the last initialization error to allow retry
)

// Connect initializes and connects to MongoDB using singleton pattern.
// If connection fails, it can be retried by calling Connect() again.
// Returns the existing client instance if already connected.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	// Reset sync.Once if previous initialization failed to allow retry
	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		client, connErr := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
		if connErr != nil {
			err = fmt.Errorf("failed to open MongoDB connection: %w", connErr)
			initErr = err
			return
		}

		// Verify connection by pinging the primary
		if pingErr := client.Ping(connectCtx, readpref.Primary()); pingErr != nil {
			_ = client.Disconnect(context.Background())
			err = fmt.Errorf("failed to ping MongoDB: %w", pingErr)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// GetClient returns the singleton MongoDB client instance.
// Panics if the client has not been initialized by calling Connect() first.
func GetClient() *mongo.Client {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("MongoDB client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the MongoDB connection and resets the singleton
// instance, allowing a new connection via Connect().
func Disconnect(ctx context.Context, client *mongo.Client) error {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close MongoDB connection: %w", err)
		}

		instance = nil
		initErr = nil
		once = sync.Once{}
	}
	return nil
}

// HealthCheck pings the primary to verify the connection is alive.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MongoDB client not initialized")
	}

	if err := instance.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB health check failed: %w", err)
	}

	return nil
}
