package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultAPIURL  = "https://slack.com/api/chat.postMessage"
	defaultChannel = "task-notifications"

	// requestTimeout bounds the outbound call so a slow chat service can
	// never hold up event processing.
	requestTimeout = 5 * time.Second
)

// Notifier delivers a message to an external chat service. Delivery is
// best-effort single-attempt; callers decide what to do with a failure.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// SlackNotifier posts messages to Slack's chat.postMessage endpoint,
// authorized with a bearer token from the environment.
type SlackNotifier struct {
	apiURL  string
	token   string
	channel string
	client  *http.Client
}

// NewSlackNotifierFromEnv builds a notifier from SLACK_API_KEY, with
// SLACK_API_URL and SLACK_CHANNEL overrides.
func NewSlackNotifierFromEnv() *SlackNotifier {
	apiURL := os.Getenv("SLACK_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	channel := os.Getenv("SLACK_CHANNEL")
	if channel == "" {
		channel = defaultChannel
	}
	return &SlackNotifier{
		apiURL:  apiURL,
		token:   os.Getenv("SLACK_API_KEY"),
		channel: channel,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// chatMessage is the chat.postMessage payload.
type chatMessage struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// Notify posts text to the configured channel. The response body is ignored
// by contract; a transport failure or non-2xx status is reported as an error.
func (n *SlackNotifier) Notify(ctx context.Context, text string) error {
	payload, err := json.Marshal(chatMessage{Channel: n.channel, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.token)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification rejected: status %d", resp.StatusCode)
	}
	return nil
}
