package s3relay

import (
	"context"

	pkghttp "fluency-srv/pkg/http"
)

// IS3Relay defines the interface for the object-storage relay that
// turns a base64 audio payload into a durable URL.
// Implementations are safe for concurrent use.
type IS3Relay interface {
	UploadAudio(ctx context.Context, base64Audio string) (string, error)
}

// New creates a new relay client. Returns the interface.
func New(cfg RelayConfig) IS3Relay {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{Timeout: DefaultTimeout})
	}
	return &relayImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
