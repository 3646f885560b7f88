package sas

import "time"

const (
	// DefaultTimeout bounds the scoring round trip. The scoring call is
	// a single blocking request; a slow analysis must surface as a
	// timeout, never hang the caller.
	DefaultTimeout = 30 * time.Second

	// AudioTypeOK is the classification the scoring service returns for
	// a usable recording. Anything else is a generation failure.
	AudioTypeOK = "Ok"

	apiKeyHeader = "x-api-key"
)
