package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoWebhook is returned when no incoming-webhook URL is configured.
var ErrNoWebhook = errors.New("slack: webhook url not configured")

// Client posts messages to a Slack incoming webhook.
type Client struct {
	webhookURL string
	http       *http.Client
}

// New creates a new webhook client.
func New(webhookURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		webhookURL: strings.TrimSpace(webhookURL),
		http:       &http.Client{Timeout: timeout},
	}
}

// Post delivers msg. Any non-2xx response is an error.
func (c *Client) Post(ctx context.Context, msg Message) error {
	if c == nil || c.webhookURL == "" {
		return ErrNoWebhook
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack post failed: status=%d body=%s", resp.StatusCode, string(b))
	}
	return nil
}
