package sas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ScoreReading submits the recording for scoring and decodes the full
// result. Authentication rides in the x-api-key header. A deadline
// overrun returns ErrTimeout; every other failure is generic.
func (s *sasImpl) ScoreReading(ctx context.Context, req ScoreRequest) (*ScoreResponse, error) {
	headers := map[string]string{
		"Accept":     "application/json",
		apiKeyHeader: s.apiKey,
	}

	body, statusCode, err := s.httpClient.Post(ctx, s.baseURL, req, headers)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("sas: scoring request failed: %w", err)
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("sas: unexpected status code: %d", statusCode)
	}

	var resp ScoreResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("sas: failed to unmarshal response: %w", err)
	}

	return &resp, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
