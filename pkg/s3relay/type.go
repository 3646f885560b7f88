package s3relay

import pkghttp "fluency-srv/pkg/http"

// RelayConfig holds configuration for the object-storage relay client.
type RelayConfig struct {
	// BaseURL is the full upload endpoint of the relay.
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// uploadRequest is the relay's wire format: a base64-encoded audio
// payload in the audioFile field.
type uploadRequest struct {
	AudioFile string `json:"audioFile"`
}

// uploadResponse carries the durable URL assigned by the relay.
type uploadResponse struct {
	S3URL string `json:"s3Url"`
}

// relayImpl implements IS3Relay.
type relayImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
