package s3relay

import "time"

const (
	// DefaultTimeout bounds the relay upload call. The upstream relay
	// itself advertises no SLA, so this is deliberately generous.
	DefaultTimeout = 60 * time.Second
)
