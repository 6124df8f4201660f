package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"ding/internal/config"
)

// Webhook delivers messages to an arbitrary HTTP endpoint.
type Webhook struct {
	url     string
	method  string
	headers map[string]string
	client  *http.Client
}

// NewWebhook creates a webhook notifier from config.
func NewWebhook(cfg config.WebhookConfig) *Webhook {
	return &Webhook{
		url:     cfg.URL,
		method:  cfg.Method,
		headers: cfg.Headers,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the channel name.
func (w *Webhook) Name() string {
	return "webhook"
}

// Notify sends the message body to the configured URL. A body that is
// valid JSON goes out as application/json, anything else as plain
// text. Configured headers are applied last and may override both.
func (w *Webhook) Notify(ctx context.Context, msg Message) error {
	req, err := http.NewRequestWithContext(ctx, httpMethod(w.method), w.url,
		strings.NewReader(msg.Body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}

	if json.Valid([]byte(msg.Body)) {
		req.Header.Set("Content-Type", "application/json")
	} else {
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	}
	req.Header.Set("X-Request-ID", ulid.Make().String())
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// httpMethod normalizes the configured method. Only GET, PUT and PATCH
// are accepted besides the default POST.
func httpMethod(method string) string {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return http.MethodGet
	case http.MethodPut:
		return http.MethodPut
	case http.MethodPatch:
		return http.MethodPatch
	default:
		return http.MethodPost
	}
}
