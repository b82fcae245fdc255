package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"keyvend/internal/pkg/clock"
	"keyvend/internal/pkg/config"
	"keyvend/internal/usecase/commands"
)

// WebhookNotifier posts admin audit events to a configured webhook URL.
// Without a URL the events are only written to the structured log. Delivery
// failures are logged and swallowed: notifications never fail the operation
// that produced them.
type WebhookNotifier struct {
	url    string
	client *http.Client
	clock  clock.Clock
	logger *slog.Logger
}

func NewWebhookNotifier(cfg config.Config, clk clock.Clock, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:    cfg.Notify.WebhookURL,
		client: &http.Client{Timeout: cfg.Notify.Timeout},
		clock:  clk,
		logger: logger,
	}
}

type webhookPayload struct {
	commands.NotifyEvent
	Timestamp string `json:"timestamp"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, event commands.NotifyEvent) {
	n.logger.Info("admin notification",
		"kind", event.Kind, "user_id", event.UserID, "actor", event.Actor)

	if n.url == "" {
		return
	}

	payload := webhookPayload{
		NotifyEvent: event,
		Timestamp:   n.clock.Now().UTC().Format("2006-01-02 15:04:05"),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error("failed to encode notification", "kind", event.Kind, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("failed to build notification request", "kind", event.Kind, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Error("failed to deliver notification", "kind", event.Kind, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		n.logger.Error("notification rejected by webhook",
			"kind", event.Kind, "status", resp.StatusCode)
	}
}
