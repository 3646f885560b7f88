package discord

import (
	"context"

	"fluency-srv/pkg/log"
)

// IDiscord defines the interface for the Discord webhook alerter.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string) error
	Close() error
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
