package sas

import "errors"

var (
	// ErrTimeout marks a scoring round trip that exceeded its deadline.
	// Kept distinct so callers can surface it as a timeout failure
	// rather than a generic upstream error.
	ErrTimeout = errors.New("sas: scoring request timed out")
)
