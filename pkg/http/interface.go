package http

import "context"

// IClient defines the interface for an HTTP client with a bounded
// timeout. No automatic retries are performed; callers own retry
// policy. Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}
