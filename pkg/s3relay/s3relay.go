package s3relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// UploadAudio posts the base64 payload to the relay and returns the
// durable URL it assigned. Any transport error, non-2xx status or
// malformed body fails the whole operation; nothing is persisted here.
func (r *relayImpl) UploadAudio(ctx context.Context, base64Audio string) (string, error) {
	body, statusCode, err := r.httpClient.Post(ctx, r.baseURL, uploadRequest{AudioFile: base64Audio}, nil)
	if err != nil {
		return "", fmt.Errorf("s3relay: upload request failed: %w", err)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("s3relay: unexpected status code: %d", statusCode)
	}

	var resp uploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("s3relay: failed to unmarshal response: %w", err)
	}
	if resp.S3URL == "" {
		return "", fmt.Errorf("s3relay: response carries no s3Url")
	}

	return resp.S3URL, nil
}
