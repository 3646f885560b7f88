package discord

import "errors"

var (
	errWebhookRequired = errors.New("discord: webhook id and token are required")
	errSendFailed      = errors.New("discord: failed to send webhook message")
)
