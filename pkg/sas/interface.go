package sas

import (
	"context"

	pkghttp "fluency-srv/pkg/http"
)

// ISAS defines the interface for the speech-analysis scoring service.
// Implementations are safe for concurrent use.
type ISAS interface {
	ScoreReading(ctx context.Context, req ScoreRequest) (*ScoreResponse, error)
}

// New creates a new scoring service client. Returns the interface.
func New(cfg SASConfig) ISAS {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{Timeout: DefaultTimeout})
	}
	return &sasImpl{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}
}
