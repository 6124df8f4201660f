package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ding/internal/config"
)

// PushoverEndpoint is the Pushover message API.
const PushoverEndpoint = "https://api.pushover.net/1/messages.json"

// Pushover sends messages through the Pushover push notification
// service.
type Pushover struct {
	token    string
	user     string
	device   string
	endpoint string
	client   *http.Client
}

// NewPushover creates a Pushover notifier from config.
func NewPushover(cfg config.PushoverConfig) *Pushover {
	return &Pushover{
		token:    cfg.APIToken,
		user:     cfg.UserKey,
		device:   cfg.Device,
		endpoint: PushoverEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the channel name.
func (p *Pushover) Name() string {
	return "pushover"
}

// Notify posts msg to the Pushover API as a form request.
func (p *Pushover) Notify(ctx context.Context, msg Message) error {
	form := url.Values{}
	form.Set("token", p.token)
	form.Set("user", p.user)
	form.Set("message", msg.Body)
	if msg.Title != "" {
		form.Set("title", msg.Title)
	}
	if p.device != "" {
		form.Set("device", p.device)
	}
	if msg.Priority != nil {
		form.Set("priority", strconv.Itoa(*msg.Priority))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build pushover request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach pushover: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("pushover returned HTTP %d", resp.StatusCode)
	}
	return nil
}
