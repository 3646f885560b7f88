package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"
	colorError       = 0xE74C3C
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendError sends an error embed to the webhook.
func (d *discordImpl) SendError(ctx context.Context, title, description string) error {
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       title,
			Description: description,
			Color:       colorError,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// Close releases resources held by the client.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Warnf(ctx, "discord.send: webhook request failed: %v", err)
		return errSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d.l.Warnf(ctx, "discord.send: webhook returned status %d", resp.StatusCode)
		return errSendFailed
	}
	return nil
}
